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

type PlaylistService struct {
	playlists repository.PlaylistRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists}
}

func (s *PlaylistService) Create(ctx context.Context, owner primitive.ObjectID, name, description string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, utils.BadRequest("all fields are required")
	}
	p := &models.Playlist{
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []primitive.ObjectID{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, utils.Internal("something went wrong while creating playlist")
	}
	return p, nil
}

func (s *PlaylistService) ListByUser(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error) {
	playlists, err := s.playlists.ListByOwner(ctx, owner)
	if err != nil {
		return nil, utils.Internal("failed to fetch playlists")
	}
	return playlists, nil
}

func (s *PlaylistService) Get(ctx context.Context, id, owner primitive.ObjectID) (*models.Playlist, error) {
	p, err := s.playlists.FindOwned(ctx, id, owner)
	if err != nil {
		return nil, mapRepoErr(err, "playlist not found", "failed to fetch playlist")
	}
	return p, nil
}

func (s *PlaylistService) Update(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, utils.BadRequest("all fields are required")
	}
	p, err := s.playlists.UpdateOwned(ctx, id, owner, name, description)
	if err != nil {
		return nil, mapRepoErr(err, "playlist not found", "something went wrong while updating playlist")
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.playlists.DeleteOwned(ctx, id, owner); err != nil {
		return mapRepoErr(err, "playlist not found", "something went wrong while deleting playlist")
	}
	return nil
}

// AddVideo has set semantics: adding a video already in the playlist succeeds
// without changing anything.
func (s *PlaylistService) AddVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	p, err := s.playlists.AddVideo(ctx, id, owner, video)
	if err != nil {
		return nil, mapRepoErr(err, "playlist not found", "something went wrong while adding video to playlist")
	}
	return p, nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	p, err := s.playlists.RemoveVideo(ctx, id, owner, video)
	if err != nil {
		return nil, mapRepoErr(err, "playlist not found", "something went wrong while removing video from playlist")
	}
	return p, nil
}
