package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type LikeService struct {
	likes repository.LikeRepository
}

func NewLikeService(likes repository.LikeRepository) *LikeService {
	return &LikeService{likes: likes}
}

// Toggle creates the like when absent and removes it when present. The
// find-then-write pair is not transactional; two concurrent toggles by the
// same actor race, bounded by the unique index on (actor, target).
func (s *LikeService) Toggle(ctx context.Context, target models.LikeTarget, actor primitive.ObjectID) (*models.Like, bool, error) {
	existing, err := s.likes.Find(ctx, target, actor)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, utils.Internal("failed to look up like")
		}
		l := &models.Like{
			Target:    target,
			LikedBy:   actor,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.likes.Create(ctx, l); err != nil {
			return nil, false, utils.Internal("something went wrong while liking")
		}
		return l, true, nil
	}
	if err := s.likes.Delete(ctx, existing.ID); err != nil {
		return nil, false, utils.Internal("something went wrong while removing the like")
	}
	return nil, false, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, actor primitive.ObjectID) ([]models.Like, error) {
	likes, err := s.likes.ListByUser(ctx, actor, models.LikeTargetVideo)
	if err != nil {
		return nil, utils.Internal("failed to fetch liked videos")
	}
	return likes, nil
}
