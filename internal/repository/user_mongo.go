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

type userMongoRepo struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	col := db.Collection(colUsers)
	ix := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), ix)
	return &userMongoRepo{col: col}
}

func (r *userMongoRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *userMongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ChannelStats joins the channel's videos and subscribers in one pipeline and
// projects the counts plus the summed view counter.
func (r *userMongoRepo) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*models.ChannelStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": channel}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colVideos,
			"localField":   "_id",
			"foreignField": "owner",
			"as":           "channel_videos",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colSubscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "channel_subscribers",
		}}},
		{{Key: "$project", Value: bson.M{
			"video_count":      bson.M{"$size": "$channel_videos"},
			"subscriber_count": bson.M{"$size": "$channel_subscribers"},
			"total_views":      bson.M{"$sum": "$channel_videos.views"},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var stats []models.ChannelStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, ErrNotFound
	}
	return &stats[0], nil
}
