package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/repository"
)

func TestCommentAddRejectsBlankContent(t *testing.T) {
	svc := NewCommentService(repository.NewMemoryCommentRepo())

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "   ")
	apiErr := requireStatus(t, err, 400)
	assert.Equal(t, "please add a comment", apiErr.Message)
}

func TestCommentAddAndList(t *testing.T) {
	svc := NewCommentService(repository.NewMemoryCommentRepo())
	video := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	c, err := svc.Add(context.Background(), video, owner, "first!")
	require.NoError(t, err)
	assert.False(t, c.ID.IsZero())

	page, err := svc.ListByVideo(context.Background(), video, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalComments)
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "first!", page.Comments[0].Content)
}

func TestCommentListPagination(t *testing.T) {
	repo := repository.NewMemoryCommentRepo()
	svc := NewCommentService(repo)
	video := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	for i := 0; i < 12; i++ {
		_, err := svc.Add(context.Background(), video, owner, "comment")
		require.NoError(t, err)
	}

	page, err := svc.ListByVideo(context.Background(), video, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalComments)
	assert.Len(t, page.Comments, 2)
}

func TestCommentListOtherVideoEmpty(t *testing.T) {
	svc := NewCommentService(repository.NewMemoryCommentRepo())

	page, err := svc.ListByVideo(context.Background(), primitive.NewObjectID(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalComments)
	assert.Empty(t, page.Comments)
}

func TestCommentUpdate(t *testing.T) {
	svc := NewCommentService(repository.NewMemoryCommentRepo())
	video := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	c, err := svc.Add(context.Background(), video, owner, "tpyo")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), c.ID, owner, "typo")
	require.NoError(t, err)
	assert.Equal(t, "typo", updated.Content)

	_, err = svc.Update(context.Background(), c.ID, owner, " ")
	apiErr := requireStatus(t, err, 400)
	assert.Equal(t, "new comment is required", apiErr.Message)

	_, err = svc.Update(context.Background(), c.ID, primitive.NewObjectID(), "not mine")
	requireStatus(t, err, 404)
}

func TestCommentDelete(t *testing.T) {
	svc := NewCommentService(repository.NewMemoryCommentRepo())
	video := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	c, err := svc.Add(context.Background(), video, owner, "bye")
	require.NoError(t, err)

	require.Error(t, svc.Delete(context.Background(), c.ID, primitive.NewObjectID()))
	require.NoError(t, svc.Delete(context.Background(), c.ID, owner))

	page, err := svc.ListByVideo(context.Background(), video, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalComments)
}
