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

type tweetMongoRepo struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) TweetRepository {
	return &tweetMongoRepo{col: db.Collection(colTweets)}
}

func (r *tweetMongoRepo) Create(ctx context.Context, t *models.Tweet) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *tweetMongoRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Tweet, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner": owner},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Tweet](ctx, cur)
}

func (r *tweetMongoRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	var t models.Tweet
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": bson.M{"content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tweetMongoRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
