package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
)

// ErrNotFound is returned when no document matches the filter. Owner-scoped
// operations return it for missing and not-owned documents alike.
var ErrNotFound = errors.New("not found")

// VideoListOptions drives the paginated search over videos. Query matches
// title or description by case-insensitive substring. A zero Owner means no
// owner filter.
type VideoListOptions struct {
	Query     string
	Owner     primitive.ObjectID
	SortBy    string
	Ascending bool
	Page      int64
	Limit     int64
}

// VideoPatch is applied field-wise; nil fields are left untouched.
type VideoPatch struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

// IsZero reports whether the patch carries no fields. Callers must not send an
// empty patch to mongo: the server rejects an empty $set.
func (p VideoPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Thumbnail == nil
}

type VideoRepository interface {
	Create(ctx context.Context, v *models.Video) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	List(ctx context.Context, opts VideoListOptions) ([]models.Video, int64, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID, publishedOnly bool) ([]models.Video, error)
	FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, patch VideoPatch) (*models.Video, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error
	TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByVideo(ctx context.Context, video primitive.ObjectID, page, limit int64) ([]models.Comment, int64, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error
}

type LikeRepository interface {
	Find(ctx context.Context, target models.LikeTarget, likedBy primitive.ObjectID) (*models.Like, error)
	Create(ctx context.Context, l *models.Like) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByUser(ctx context.Context, likedBy primitive.ObjectID, kind models.LikeTargetKind) ([]models.Like, error)
}

type TweetRepository interface {
	Create(ctx context.Context, t *models.Tweet) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Tweet, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, p *models.Playlist) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error)
	FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Playlist, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) error
	AddVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error)
}

type SubscriptionRepository interface {
	Find(ctx context.Context, channel, subscriber primitive.ObjectID) (*models.Subscription, error)
	Create(ctx context.Context, s *models.Subscription) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListSubscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscription, error)
	ListChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.Subscription, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ChannelStats(ctx context.Context, channel primitive.ObjectID) (*models.ChannelStats, error)
}
