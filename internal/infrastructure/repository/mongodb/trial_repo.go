package mongodb

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTrialRepository struct {
	collection *mongo.Collection
}

var _ contract.ITrialRepository = (*MongoTrialRepository)(nil)

func NewMongoTrialRepository(collection *mongo.Collection) *MongoTrialRepository {
	return &MongoTrialRepository{collection: collection}
}

// EnsureIndexes creates the unique index on the registry identifier.
func (r *MongoTrialRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trial_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// UpsertTrial inserts or replaces a trial keyed by its registry identifier,
// so repeated external refreshes never create duplicates.
func (r *MongoTrialRepository) UpsertTrial(ctx context.Context, trial *entity.ClinicalTrial) error {
	if trial.ID == "" {
		trial.ID = primitive.NewObjectID().Hex()
	}
	filter := bson.M{"trial_id": trial.TrialID}
	update := bson.M{"$set": bson.M{
		"title":       trial.Title,
		"description": trial.Description,
		"phase":       trial.Phase,
		"status":      trial.Status,
		"ai_summary":  trial.AISummary,
	}, "$setOnInsert": bson.M{"_id": trial.ID, "trial_id": trial.TrialID}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoTrialRepository) GetTrialByID(ctx context.Context, id string) (*entity.ClinicalTrial, error) {
	var trial entity.ClinicalTrial
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &trial, nil
}

func (r *MongoTrialRepository) FindTrialsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.ClinicalTrial, error) {
	if len(conditions) == 0 {
		return []entity.ClinicalTrial{}, nil
	}
	ors := make([]bson.M, 0, len(conditions)*2)
	for _, c := range conditions {
		pattern := primitive.Regex{Pattern: c, Options: "i"}
		ors = append(ors,
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		)
	}
	return r.findTrials(ctx, bson.M{"$or": ors}, limit)
}

func (r *MongoTrialRepository) SearchTrials(ctx context.Context, keyword string, limit int64) ([]entity.ClinicalTrial, error) {
	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"description": pattern},
		{"trial_id": pattern},
	}}
	return r.findTrials(ctx, filter, limit)
}

func (r *MongoTrialRepository) findTrials(ctx context.Context, filter bson.M, limit int64) ([]entity.ClinicalTrial, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trials := []entity.ClinicalTrial{}
	if err := cursor.All(ctx, &trials); err != nil {
		return nil, err
	}
	return trials, nil
}
