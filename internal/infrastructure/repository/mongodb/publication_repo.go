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

type MongoPublicationRepository struct {
	collection *mongo.Collection
}

var _ contract.IPublicationRepository = (*MongoPublicationRepository)(nil)

func NewMongoPublicationRepository(collection *mongo.Collection) *MongoPublicationRepository {
	return &MongoPublicationRepository{collection: collection}
}

// EnsureIndexes creates the unique index on DOI.
func (r *MongoPublicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doi", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoPublicationRepository) CreatePublication(ctx context.Context, pub *entity.Publication) error {
	if pub.ID == "" {
		pub.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, pub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *MongoPublicationRepository) FindPublicationsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.Publication, error) {
	if len(conditions) == 0 {
		return []entity.Publication{}, nil
	}
	ors := make([]bson.M, 0, len(conditions)*2)
	for _, c := range conditions {
		pattern := primitive.Regex{Pattern: c, Options: "i"}
		ors = append(ors,
			bson.M{"title": pattern},
			bson.M{"abstract": pattern},
		)
	}
	return r.findPublications(ctx, bson.M{"$or": ors}, limit)
}

func (r *MongoPublicationRepository) SearchPublications(ctx context.Context, keyword string, limit int64) ([]entity.Publication, error) {
	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"abstract": pattern},
		{"journal": pattern},
	}}
	return r.findPublications(ctx, filter, limit)
}

func (r *MongoPublicationRepository) findPublications(ctx context.Context, filter bson.M, limit int64) ([]entity.Publication, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pubs := []entity.Publication{}
	if err := cursor.All(ctx, &pubs); err != nil {
		return nil, err
	}
	return pubs, nil
}
