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

type subscriptionMongoRepo struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	col := db.Collection(colSubscriptions)
	ix := mongo.IndexModel{
		Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("subscriber_channel_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), ix)
	return &subscriptionMongoRepo{col: col}
}

func (r *subscriptionMongoRepo) Find(ctx context.Context, channel, subscriber primitive.ObjectID) (*models.Subscription, error) {
	var s models.Subscription
	err := r.col.FindOne(ctx, bson.M{"channel": channel, "subscriber": subscriber}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *subscriptionMongoRepo) Create(ctx context.Context, s *models.Subscription) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *subscriptionMongoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *subscriptionMongoRepo) ListSubscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscription, error) {
	cur, err := r.col.Find(ctx, bson.M{"channel": channel})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Subscription](ctx, cur)
}

func (r *subscriptionMongoRepo) ListChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.Subscription, error) {
	cur, err := r.col.Find(ctx, bson.M{"subscriber": subscriber})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Subscription](ctx, cur)
}
