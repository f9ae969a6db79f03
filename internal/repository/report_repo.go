package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sarrisk/internal/model"
)

// ReportRepo handles MongoDB operations for finalized assessment reports
type ReportRepo interface {
	Create(ctx context.Context, report *model.Report) (string, error)
	GetByID(ctx context.Context, id string) (*model.Report, error)
	ListByMission(ctx context.Context, missionCode string) ([]*model.Report, error)
}

type reportRepo struct {
	reports *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		reports: db.Collection("reports"),
	}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) (string, error) {
	if report.FinalizedAt.IsZero() {
		report.FinalizedAt = time.Now()
	}
	report.ID = ""

	result, err := r.reports.InsertOne(ctx, report)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid.Hex()
	}
	return report.ID, nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var report model.Report
	err = r.reports.FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	report.ID = id
	return &report, nil
}

// ListByMission returns a mission's reports, newest first
func (r *reportRepo) ListByMission(ctx context.Context, missionCode string) ([]*model.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "finalizedAt", Value: -1}})
	cursor, err := r.reports.Find(ctx, bson.M{"missionCode": missionCode}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
