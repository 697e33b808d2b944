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

type likeMongoRepo struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) LikeRepository {
	col := db.Collection(colLikes)
	// One like per (user, target). The toggle itself is not transactional; the
	// index turns a lost race into a duplicate-key error instead of a double like.
	ix := mongo.IndexModel{
		Keys: bson.D{
			{Key: "liked_by", Value: 1},
			{Key: "target.kind", Value: 1},
			{Key: "target.id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("liked_by_target_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), ix)
	return &likeMongoRepo{col: col}
}

func (r *likeMongoRepo) Find(ctx context.Context, target models.LikeTarget, likedBy primitive.ObjectID) (*models.Like, error) {
	var l models.Like
	filter := bson.M{
		"liked_by":    likedBy,
		"target.kind": target.Kind,
		"target.id":   target.ID,
	}
	if err := r.col.FindOne(ctx, filter).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *likeMongoRepo) Create(ctx context.Context, l *models.Like) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *likeMongoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *likeMongoRepo) ListByUser(ctx context.Context, likedBy primitive.ObjectID, kind models.LikeTargetKind) ([]models.Like, error) {
	cur, err := r.col.Find(ctx, bson.M{"liked_by": likedBy, "target.kind": kind})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Like](ctx, cur)
}
