package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sarrisk/internal/model"
)

// PreferencesRepo stores per-team settings
type PreferencesRepo interface {
	Get(ctx context.Context, teamID string) (*model.Preferences, error)
	Save(ctx context.Context, prefs *model.Preferences) error
}

type preferencesRepo struct {
	collection *mongo.Collection
}

// NewPreferencesRepo creates a new preferences repository
func NewPreferencesRepo(db *mongo.Database) PreferencesRepo {
	return &preferencesRepo{
		collection: db.Collection("preferences"),
	}
}

func (r *preferencesRepo) Get(ctx context.Context, teamID string) (*model.Preferences, error) {
	var prefs model.Preferences
	err := r.collection.FindOne(ctx, bson.M{"teamId": teamID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *preferencesRepo) Save(ctx context.Context, prefs *model.Preferences) error {
	prefs.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"teamId": prefs.TeamID}, prefs, opts)
	return err
}
