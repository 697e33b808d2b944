package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
	"github.com/Samir-codes-123/videotube-backend/internal/storage"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

// sortFields whitelists the API sort keys and maps them onto document fields.
var sortFields = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

type VideoService struct {
	videos repository.VideoRepository
	media  storage.Store
	log    *zap.SugaredLogger
}

func NewVideoService(videos repository.VideoRepository, media storage.Store, log *zap.SugaredLogger) *VideoService {
	return &VideoService{videos: videos, media: media, log: log}
}

type VideoListInput struct {
	Query    string
	SortBy   string
	SortType string
	UserID   string
	Page     int64
	Limit    int64
}

type VideoListResult struct {
	TotalVideos int64          `json:"totalVideos"`
	Videos      []models.Video `json:"videos"`
}

func (s *VideoService) List(ctx context.Context, in VideoListInput) (*VideoListResult, error) {
	opts := repository.VideoListOptions{
		Query:     in.Query,
		SortBy:    "created_at",
		Ascending: in.SortType != "desc",
		Page:      in.Page,
		Limit:     in.Limit,
	}
	if field, ok := sortFields[in.SortBy]; ok {
		opts.SortBy = field
	}
	// an owner filter is applied only when the id is syntactically valid
	if owner, err := primitive.ObjectIDFromHex(in.UserID); err == nil {
		opts.Owner = owner
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}
	videos, total, err := s.videos.List(ctx, opts)
	if err != nil {
		return nil, utils.Internal("failed to fetch videos")
	}
	return &VideoListResult{TotalVideos: total, Videos: videos}, nil
}

// Publish uploads both files and creates the published video record. The
// remote upload consumes the local temp files either way.
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, title, description, videoPath, thumbnailPath string) (*models.Video, error) {
	videoAsset, err := s.media.Upload(ctx, videoPath, storage.KindVideo)
	if err != nil {
		s.log.Errorw("video upload failed", "error", err)
		return nil, utils.Internal("error while uploading the video")
	}
	thumbAsset, err := s.media.Upload(ctx, thumbnailPath, storage.KindImage)
	if err != nil {
		s.log.Errorw("thumbnail upload failed", "error", err)
		return nil, utils.Internal("error while uploading the thumbnail")
	}
	v := &models.Video{
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Title:       title,
		Description: description,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.videos.Create(ctx, v); err != nil {
		return nil, utils.Internal("something went wrong while uploading the video")
	}
	return v, nil
}

func (s *VideoService) Get(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "video not found", "failed to fetch video")
	}
	return v, nil
}

type VideoUpdateInput struct {
	Title         string
	Description   string
	ThumbnailPath string // local temp file; empty means keep the current one
}

func (s *VideoService) Update(ctx context.Context, id, owner primitive.ObjectID, in VideoUpdateInput) (*models.Video, error) {
	current, err := s.videos.FindOwned(ctx, id, owner)
	if err != nil {
		return nil, mapRepoErr(err, "no video found or not authorized to update", "failed to fetch video")
	}
	patch := repository.VideoPatch{}
	if in.Title != "" {
		patch.Title = &in.Title
	}
	if in.Description != "" {
		patch.Description = &in.Description
	}
	if in.ThumbnailPath != "" {
		asset, err := s.media.Upload(ctx, in.ThumbnailPath, storage.KindImage)
		if err != nil {
			s.log.Errorw("thumbnail replace failed", "video", id.Hex(), "error", err)
			return nil, utils.Internal("error while updating thumbnail")
		}
		patch.Thumbnail = &asset.URL
		// old thumbnail removal is advisory
		if current.Thumbnail != "" && !s.media.Delete(ctx, current.Thumbnail, storage.KindImage) {
			s.log.Warnw("stale thumbnail left on media store", "url", current.Thumbnail)
		}
	}
	// nothing to change: answer with the document as-is instead of sending an
	// empty $set, which mongo rejects
	if patch.IsZero() {
		return current, nil
	}
	updated, err := s.videos.UpdateOwned(ctx, id, owner, patch)
	if err != nil {
		return nil, mapRepoErr(err, "no video found or not authorized to update", "failed to update video")
	}
	return updated, nil
}

// Delete removes the remote assets before the record. Both deletions are
// attempted even if the first fails; any remote failure aborts before the DB
// delete, so the stored references stay recoverable. A thumbnail failure takes
// precedence in the reported error.
func (s *VideoService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	v, err := s.videos.FindOwned(ctx, id, owner)
	if err != nil {
		return mapRepoErr(err, "no video found", "failed to fetch video")
	}
	videoGone := s.media.Delete(ctx, v.VideoFile, storage.KindVideo)
	thumbGone := s.media.Delete(ctx, v.Thumbnail, storage.KindImage)
	if !thumbGone {
		return utils.Internal("error on deleting thumbnail from media store")
	}
	if !videoGone {
		return utils.Internal("error on deleting video from media store")
	}
	if err := s.videos.DeleteOwned(ctx, id, owner); err != nil {
		return mapRepoErr(err, "no video found", "error on deleting video from db")
	}
	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	v, err := s.videos.TogglePublish(ctx, id, owner)
	if err != nil {
		return nil, mapRepoErr(err, "no video found or not authorized to update", "error while updating the publish status")
	}
	return v, nil
}

// ChannelVideos lists the published uploads of a channel for the dashboard.
func (s *VideoService) ChannelVideos(ctx context.Context, channel primitive.ObjectID) ([]models.Video, error) {
	videos, err := s.videos.ListByOwner(ctx, channel, true)
	if err != nil {
		return nil, utils.Internal("failed to fetch channel videos")
	}
	return videos, nil
}
