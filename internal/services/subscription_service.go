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

type SubscriptionService struct {
	subs repository.SubscriptionRepository
}

func NewSubscriptionService(subs repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subs: subs}
}

// Toggle subscribes when no subscription exists and unsubscribes otherwise.
// Same non-transactional find-then-write as the like toggle; the unique
// (subscriber, channel) index bounds the race.
func (s *SubscriptionService) Toggle(ctx context.Context, channel, subscriber primitive.ObjectID) (*models.Subscription, bool, error) {
	existing, err := s.subs.Find(ctx, channel, subscriber)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, utils.Internal("failed to look up subscription")
		}
		sub := &models.Subscription{
			Channel:    channel,
			Subscriber: subscriber,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.subs.Create(ctx, sub); err != nil {
			return nil, false, utils.Internal("something went wrong while subscribing to the channel")
		}
		return sub, true, nil
	}
	if err := s.subs.Delete(ctx, existing.ID); err != nil {
		return nil, false, utils.Internal("something went wrong while unsubscribing from the channel")
	}
	return nil, false, nil
}

func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscription, error) {
	subs, err := s.subs.ListSubscribers(ctx, channel)
	if err != nil {
		return nil, utils.Internal("failed to fetch channel subscribers")
	}
	return subs, nil
}

func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.Subscription, error) {
	subs, err := s.subs.ListChannels(ctx, subscriber)
	if err != nil {
		return nil, utils.Internal("failed to fetch subscribed channels")
	}
	return subs, nil
}
