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

type videoMongoRepo struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) VideoRepository {
	col := db.Collection(colVideos)
	ix := mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("owner_created_idx"),
	}
	_, _ = col.Indexes().CreateOne(context.Background(), ix)
	return &videoMongoRepo{col: col}
}

func (r *videoMongoRepo) Create(ctx context.Context, v *models.Video) error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, v)
	return err
}

func (r *videoMongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoMongoRepo) List(ctx context.Context, opts VideoListOptions) ([]models.Video, int64, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"title": bson.M{"$regex": opts.Query, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": opts.Query, "$options": "i"}},
	}}
	if !opts.Owner.IsZero() {
		filter["owner"] = opts.Owner
	}
	dir := -1
	if opts.Ascending {
		dir = 1
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: opts.SortBy, Value: dir}}).
		SetSkip((opts.Page - 1) * opts.Limit).
		SetLimit(opts.Limit)
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	videos, err := decodeAll[models.Video](ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *videoMongoRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID, publishedOnly bool) ([]models.Video, error) {
	filter := bson.M{"owner": owner}
	if publishedOnly {
		filter["is_published"] = true
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Video](ctx, cur)
}

func (r *videoMongoRepo) FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoMongoRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, patch VideoPatch) (*models.Video, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = *patch.Thumbnail
	}
	var v models.Video
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoMongoRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TogglePublish flips is_published atomically via a pipeline update, so two
// concurrent toggles cannot read the same stale value.
func (r *videoMongoRepo) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	update := bson.A{
		bson.M{"$set": bson.M{"is_published": bson.M{"$not": "$is_published"}}},
	}
	var v models.Video
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
