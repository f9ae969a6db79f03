package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"sarrisk/internal/model"
)

type MissionRepo interface {
	Create(ctx context.Context, mission *model.Mission) error
	GetByCode(ctx context.Context, code string) (*model.Mission, error)
	Update(ctx context.Context, mission *model.Mission) error
	ListByCoordinator(ctx context.Context, coordinatorID string) ([]*model.Mission, error)
}

type missionRepo struct {
	collection *mongo.Collection
}

func NewMissionRepo(db *mongo.Database) MissionRepo {
	return &missionRepo{
		collection: db.Collection("missions"),
	}
}

func (r *missionRepo) Create(ctx context.Context, mission *model.Mission) error {
	if mission.CreatedAt.IsZero() {
		mission.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, mission)
	return err
}

func (r *missionRepo) GetByCode(ctx context.Context, code string) (*model.Mission, error) {
	var mission model.Mission
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&mission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Mission not found
		}
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepo) Update(ctx context.Context, mission *model.Mission) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"code": mission.Code}, mission)
	return err
}

func (r *missionRepo) ListByCoordinator(ctx context.Context, coordinatorID string) ([]*model.Mission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"coordinatorId": coordinatorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var missions []*model.Mission
	if err := cursor.All(ctx, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}
