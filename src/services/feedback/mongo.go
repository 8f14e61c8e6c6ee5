package feedback

import (
	"context"
	"strconv"
	"time"

	"Backend-Feedback-Journey/src/database"
	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/journeys"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore เก็บ feedback ลง collection เดียว, soft delete ด้วย flag
type MongoStore struct {
	collection *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore() *MongoStore {
	return &MongoStore{
		collection: database.GetCollection(database.DatabaseName, "feedbacks"),
	}
}

func (s *MongoStore) Create(ctx context.Context, rec models.Feedback) (models.Feedback, error) {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Deleted = false

	result, err := s.collection.InsertOne(ctx, rec)
	if err != nil {
		return models.Feedback{}, err
	}
	rec.ID = result.InsertedID.(primitive.ObjectID)
	return rec, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string, excludeDeleted bool) (*models.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	filter := bson.M{"_id": oid}
	if excludeDeleted {
		filter["deleted"] = false
	}

	var rec models.Feedback
	if err := s.collection.FindOne(ctx, filter).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// UpdateField เขียน field เดียว + updatedAt — edit flow หนึ่ง POST แตะหนึ่ง field
func (s *MongoStore) UpdateField(ctx context.Context, id, field string, v models.AnswerValue) (*models.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	switch field {
	case journeys.FieldRating:
		n, err := strconv.Atoi(v.Text)
		if err != nil {
			return nil, err
		}
		set["rating"] = n
	case journeys.FieldComments:
		set["comments"] = v.Text
	default:
		set[field] = v.Raw()
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted": false},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return s.FindByID(ctx, id, true)
}

func (s *MongoStore) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	now := time.Now()
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "deletedAt": now, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List ใช้ $facet เพื่อให้ items กับ total มาจาก snapshot เดียวกัน
func (s *MongoStore) List(ctx context.Context) (*models.FeedbackList, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"deleted": false}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$facet", Value: bson.M{
			"items": bson.A{bson.M{"$match": bson.M{}}},
			"total": bson.A{bson.M{"$count": "count"}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pages []struct {
		Items []models.Feedback `bson:"items"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}

	out := &models.FeedbackList{Items: []models.Feedback{}}
	if len(pages) > 0 {
		if pages[0].Items != nil {
			out.Items = pages[0].Items
		}
		if len(pages[0].Total) > 0 {
			out.Total = pages[0].Total[0].Count
		}
	}
	return out, nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"deleted": false})
}
