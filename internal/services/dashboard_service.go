package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
)

type DashboardService struct {
	users  repository.UserRepository
	videos *VideoService
}

func NewDashboardService(users repository.UserRepository, videos *VideoService) *DashboardService {
	return &DashboardService{users: users, videos: videos}
}

func (s *DashboardService) Stats(ctx context.Context, channel primitive.ObjectID) (*models.ChannelStats, error) {
	stats, err := s.users.ChannelStats(ctx, channel)
	if err != nil {
		return nil, mapRepoErr(err, "channel not found", "failed to fetch channel stats")
	}
	return stats, nil
}

func (s *DashboardService) Videos(ctx context.Context, channel primitive.ObjectID) ([]models.Video, error) {
	return s.videos.ChannelVideos(ctx, channel)
}
