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

type MongoExpertRepository struct {
	collection *mongo.Collection
}

var _ contract.IExpertRepository = (*MongoExpertRepository)(nil)

func NewMongoExpertRepository(collection *mongo.Collection) *MongoExpertRepository {
	return &MongoExpertRepository{collection: collection}
}

func (r *MongoExpertRepository) CreateExpert(ctx context.Context, expert *entity.Expert) error {
	if expert.ID == "" {
		expert.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, expert)
	return err
}

func (r *MongoExpertRepository) GetExpertByID(ctx context.Context, id string) (*entity.Expert, error) {
	var expert entity.Expert
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expert)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &expert, nil
}

func (r *MongoExpertRepository) FindExpertsBySpecialties(ctx context.Context, specialties []string, limit int64) ([]entity.Expert, error) {
	if len(specialties) == 0 {
		return []entity.Expert{}, nil
	}
	ors := make([]bson.M, 0, len(specialties))
	for _, s := range specialties {
		pattern := primitive.Regex{Pattern: s, Options: "i"}
		ors = append(ors, bson.M{"specialties": pattern})
	}
	return r.findExperts(ctx, bson.M{"$or": ors}, limit)
}

func (r *MongoExpertRepository) SearchExperts(ctx context.Context, keyword string, limit int64) ([]entity.Expert, error) {
	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"primary_affiliation": pattern},
		{"specialties": pattern},
	}}
	return r.findExperts(ctx, filter, limit)
}

func (r *MongoExpertRepository) findExperts(ctx context.Context, filter bson.M, limit int64) ([]entity.Expert, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	experts := []entity.Expert{}
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, err
	}
	return experts, nil
}
