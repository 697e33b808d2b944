package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
)

type commentMongoRepo struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	col := db.Collection(colComments)
	ix := mongo.IndexModel{
		Keys:    bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("video_created_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), ix)
	return &commentMongoRepo{col: col}
}

func (r *commentMongoRepo) Create(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// ListByVideo pages through a video's comments with a single aggregation:
// the $facet stage produces the page and the total count in one round trip.
func (r *commentMongoRepo) ListByVideo(ctx context.Context, video primitive.ObjectID, page, limit int64) ([]models.Comment, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": video}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$facet", Value: bson.M{
			"items": bson.A{
				bson.M{"$skip": (page - 1) * limit},
				bson.M{"$limit": limit},
			},
			"total": bson.A{bson.M{"$count": "count"}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	var pages []struct {
		Items []models.Comment `bson:"items"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := cur.All(ctx, &pages); err != nil {
		return nil, 0, err
	}
	if len(pages) == 0 {
		return []models.Comment{}, 0, nil
	}
	total := int64(0)
	if len(pages[0].Total) > 0 {
		total = pages[0].Total[0].Count
	}
	items := pages[0].Items
	if items == nil {
		items = []models.Comment{}
	}
	return items, total, nil
}

func (r *commentMongoRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	var c models.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": bson.M{"content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentMongoRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
