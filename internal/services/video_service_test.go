package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
)

func newVideoFixture() (*VideoService, *repository.MemoryVideoRepo, *fakeStore) {
	repo := repository.NewMemoryVideoRepo()
	store := newFakeStore()
	return NewVideoService(repo, store, zap.NewNop().Sugar()), repo, store
}

func seedVideo(t *testing.T, repo *repository.MemoryVideoRepo, owner primitive.ObjectID, title string, views int64) *models.Video {
	t.Helper()
	v := &models.Video{
		VideoFile:   "https://cdn.test/video-" + title,
		Thumbnail:   "https://cdn.test/thumb-" + title,
		Title:       title,
		Description: "about " + title,
		Duration:    30,
		Views:       views,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestVideoListFiltersAndSorts(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	owner := primitive.NewObjectID()
	seedVideo(t, repo, owner, "cats compilation", 10)
	seedVideo(t, repo, owner, "more cats", 50)
	seedVideo(t, repo, owner, "dog tricks", 99)

	res, err := svc.List(context.Background(), VideoListInput{Query: "cats", SortBy: "views", SortType: "desc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalVideos)
	require.Len(t, res.Videos, 2)
	assert.Equal(t, "more cats", res.Videos[0].Title)
	assert.Equal(t, "cats compilation", res.Videos[1].Title)
}

func TestVideoListIgnoresInvalidUserID(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	seedVideo(t, repo, primitive.NewObjectID(), "anything", 1)

	res, err := svc.List(context.Background(), VideoListInput{UserID: "not-an-object-id"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.TotalVideos)
}

func TestVideoListOwnerFilter(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	mine := primitive.NewObjectID()
	seedVideo(t, repo, mine, "mine", 1)
	seedVideo(t, repo, primitive.NewObjectID(), "theirs", 1)

	res, err := svc.List(context.Background(), VideoListInput{UserID: mine.Hex()})
	require.NoError(t, err)
	require.Len(t, res.Videos, 1)
	assert.Equal(t, "mine", res.Videos[0].Title)
}

func TestVideoListPagination(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	owner := primitive.NewObjectID()
	for i := 0; i < 15; i++ {
		seedVideo(t, repo, owner, "clip", int64(i))
	}

	res, err := svc.List(context.Background(), VideoListInput{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.TotalVideos)
	assert.Len(t, res.Videos, 5)
}

func TestVideoPublish(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()

	v, err := svc.Publish(context.Background(), owner, "my clip", "a description", "/tmp/video.mp4", "/tmp/thumb.png")
	require.NoError(t, err)
	assert.True(t, v.IsPublished)
	assert.InDelta(t, 12.5, v.Duration, 1e-9)
	assert.NotEmpty(t, v.VideoFile)
	assert.NotEmpty(t, v.Thumbnail)
	assert.Equal(t, 2, store.uploads)

	stored, err := repo.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, stored.Owner)
}

func TestVideoPublishUploadFailure(t *testing.T) {
	svc, _, store := newVideoFixture()
	store.failUploads["video"] = true

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), "t", "d", "/tmp/v", "/tmp/t")
	requireStatus(t, err, 500)
}

func TestVideoGetNotFound(t *testing.T) {
	svc, _, _ := newVideoFixture()
	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	apiErr := requireStatus(t, err, 404)
	assert.Equal(t, "video not found", apiErr.Message)
}

func TestVideoUpdateOwnerMismatch(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	v := seedVideo(t, repo, primitive.NewObjectID(), "theirs", 0)

	_, err := svc.Update(context.Background(), v.ID, primitive.NewObjectID(), VideoUpdateInput{Title: "stolen"})
	requireStatus(t, err, 404)
}

func TestVideoUpdateEmptyPatchIsNoOp(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)

	// no fields and no thumbnail: the unchanged document comes back
	updated, err := svc.Update(context.Background(), v.ID, owner, VideoUpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "clip", updated.Title)
	assert.Equal(t, "about clip", updated.Description)
	assert.Equal(t, v.Thumbnail, updated.Thumbnail)
	assert.Equal(t, 0, store.uploads)
	assert.Empty(t, store.deleted)
}

func TestVideoUpdateReplacesThumbnail(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)
	oldThumb := v.Thumbnail

	updated, err := svc.Update(context.Background(), v.ID, owner, VideoUpdateInput{
		Title:         "renamed",
		ThumbnailPath: "/tmp/new-thumb.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.NotEqual(t, oldThumb, updated.Thumbnail)
	assert.Contains(t, store.deleted, oldThumb)
}

func TestVideoDelete(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)

	require.NoError(t, svc.Delete(context.Background(), v.ID, owner))
	assert.Contains(t, store.deleted, v.VideoFile)
	assert.Contains(t, store.deleted, v.Thumbnail)
	_, err := repo.GetByID(context.Background(), v.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVideoDeleteAbortsWhenRemoteDeleteFails(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)
	store.failDeletes[v.Thumbnail] = true

	err := svc.Delete(context.Background(), v.ID, owner)
	requireStatus(t, err, 500)

	// the record survives so the stored asset URLs remain recoverable
	_, err = repo.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
}

func TestVideoDeleteAttemptsBothRemoteDeletes(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)
	store.failDeletes[v.VideoFile] = true

	err := svc.Delete(context.Background(), v.ID, owner)
	apiErr := requireStatus(t, err, 500)
	assert.Equal(t, "error on deleting video from media store", apiErr.Message)

	// the thumbnail delete was still attempted
	assert.Contains(t, store.deleted, v.Thumbnail)
	_, err = repo.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
}

func TestVideoDeleteReportsThumbnailFailureFirst(t *testing.T) {
	svc, repo, store := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)
	store.failDeletes[v.VideoFile] = true
	store.failDeletes[v.Thumbnail] = true

	err := svc.Delete(context.Background(), v.ID, owner)
	apiErr := requireStatus(t, err, 500)
	assert.Equal(t, "error on deleting thumbnail from media store", apiErr.Message)
}

func TestVideoTogglePublishRoundTrip(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	owner := primitive.NewObjectID()
	v := seedVideo(t, repo, owner, "clip", 0)

	toggled, err := svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)

	toggled, err = svc.TogglePublish(context.Background(), v.ID, owner)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)
}

func TestChannelVideosPublishedOnly(t *testing.T) {
	svc, repo, _ := newVideoFixture()
	owner := primitive.NewObjectID()
	seedVideo(t, repo, owner, "public", 0)
	draft := seedVideo(t, repo, owner, "draft", 0)
	_, err := svc.TogglePublish(context.Background(), draft.ID, owner)
	require.NoError(t, err)

	videos, err := svc.ChannelVideos(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "public", videos[0].Title)
}
