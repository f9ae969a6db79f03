package repository

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sarrisk/internal/model"
)

// QuestionnaireRepo handles MongoDB operations for questionnaire definitions
type QuestionnaireRepo interface {
	Get(ctx context.Context, typ, variant string) (*model.Questionnaire, error)
	Variants(ctx context.Context, typ string) ([]string, error)
	Upsert(ctx context.Context, q *model.Questionnaire) error
}

type questionnaireRepo struct {
	collection *mongo.Collection
}

// NewQuestionnaireRepo creates a new questionnaire repository
func NewQuestionnaireRepo(db *mongo.Database) QuestionnaireRepo {
	return &questionnaireRepo{
		collection: db.Collection("questionnaires"),
	}
}

func (r *questionnaireRepo) Get(ctx context.Context, typ, variant string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.collection.FindOne(ctx, bson.M{"type": typ, "variant": variant}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepo) Variants(ctx context.Context, typ string) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "variant", bson.M{"type": typ})
	if err != nil {
		return nil, err
	}
	variants := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			variants = append(variants, s)
		}
	}
	sort.Strings(variants)
	return variants, nil
}

// Upsert replaces the definition with the same type and variant
func (r *questionnaireRepo) Upsert(ctx context.Context, q *model.Questionnaire) error {
	q.UpdatedAt = time.Now()
	q.ID = ""

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"type": q.Type, "variant": q.Variant}, q, opts)
	return err
}
