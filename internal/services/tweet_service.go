package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

type TweetService struct {
	tweets repository.TweetRepository
}

func NewTweetService(tweets repository.TweetRepository) *TweetService {
	return &TweetService{tweets: tweets}
}

func (s *TweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.BadRequest("provide tweet before submitting")
	}
	t := &models.Tweet{
		Content:   content,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, utils.Internal("something went wrong while creating tweet")
	}
	return t, nil
}

func (s *TweetService) ListByUser(ctx context.Context, owner primitive.ObjectID) ([]models.Tweet, error) {
	tweets, err := s.tweets.ListByOwner(ctx, owner)
	if err != nil {
		return nil, utils.Internal("failed to fetch tweets")
	}
	return tweets, nil
}

func (s *TweetService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.BadRequest("please send a valid tweet")
	}
	t, err := s.tweets.UpdateOwned(ctx, id, owner, content)
	if err != nil {
		return nil, mapRepoErr(err, "tweet not found or not authorized to update", "failed to update tweet")
	}
	return t, nil
}

func (s *TweetService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.tweets.DeleteOwned(ctx, id, owner); err != nil {
		return mapRepoErr(err, "tweet not found or not authorized to delete", "failed to delete tweet")
	}
	return nil
}
