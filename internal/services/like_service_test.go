package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
	"github.com/Samir-codes-123/videotube-backend/internal/repository"
)

func TestLikeToggleRoundTrip(t *testing.T) {
	svc := NewLikeService(repository.NewMemoryLikeRepo())
	actor := primitive.NewObjectID()
	target := models.LikeTarget{Kind: models.LikeTargetVideo, ID: primitive.NewObjectID()}

	l, added, err := svc.Toggle(context.Background(), target, actor)
	require.NoError(t, err)
	assert.True(t, added)
	require.NotNil(t, l)
	assert.Equal(t, target, l.Target)
	assert.Equal(t, actor, l.LikedBy)

	l, added, err = svc.Toggle(context.Background(), target, actor)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Nil(t, l)

	_, added, err = svc.Toggle(context.Background(), target, actor)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestLikeToggleDistinguishesKinds(t *testing.T) {
	svc := NewLikeService(repository.NewMemoryLikeRepo())
	actor := primitive.NewObjectID()
	id := primitive.NewObjectID()

	// the same id liked as a video and as a comment are two separate likes
	_, added, err := svc.Toggle(context.Background(), models.LikeTarget{Kind: models.LikeTargetVideo, ID: id}, actor)
	require.NoError(t, err)
	assert.True(t, added)

	_, added, err = svc.Toggle(context.Background(), models.LikeTarget{Kind: models.LikeTargetComment, ID: id}, actor)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestLikedVideosFiltersByKind(t *testing.T) {
	svc := NewLikeService(repository.NewMemoryLikeRepo())
	actor := primitive.NewObjectID()

	videoID := primitive.NewObjectID()
	_, _, err := svc.Toggle(context.Background(), models.LikeTarget{Kind: models.LikeTargetVideo, ID: videoID}, actor)
	require.NoError(t, err)
	_, _, err = svc.Toggle(context.Background(), models.LikeTarget{Kind: models.LikeTargetTweet, ID: primitive.NewObjectID()}, actor)
	require.NoError(t, err)
	_, _, err = svc.Toggle(context.Background(), models.LikeTarget{Kind: models.LikeTargetVideo, ID: primitive.NewObjectID()}, primitive.NewObjectID())
	require.NoError(t, err)

	likes, err := svc.LikedVideos(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, videoID, likes[0].Target.ID)
}
