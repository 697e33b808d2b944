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

type playlistMongoRepo struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistMongoRepo{col: db.Collection(colPlaylists)}
}

func (r *playlistMongoRepo) Create(ctx context.Context, p *models.Playlist) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *playlistMongoRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner": owner},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Playlist](ctx, cur)
}

func (r *playlistMongoRepo) FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playlistMongoRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner,
		bson.M{"$set": bson.M{"name": name, "description": description}})
}

func (r *playlistMongoRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddVideo relies on $addToSet: adding a video that is already present is a
// no-op rather than an error.
func (r *playlistMongoRepo) AddVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner,
		bson.M{"$addToSet": bson.M{"videos": video}})
}

func (r *playlistMongoRepo) RemoveVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner,
		bson.M{"$pull": bson.M{"videos": video}})
}

func (r *playlistMongoRepo) findOneAndUpdateOwned(ctx context.Context, id, owner primitive.ObjectID, update bson.M) (*models.Playlist, error) {
	var p models.Playlist
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
