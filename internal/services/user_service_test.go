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

func TestUserProfile(t *testing.T) {
	users := repository.NewMemoryUserRepo(repository.NewMemoryVideoRepo(), repository.NewMemorySubscriptionRepo())
	svc := NewUserService(users)

	u := &models.User{Username: "samir", FullName: "Samir K"}
	require.NoError(t, users.Create(context.Background(), u))

	got, err := svc.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "samir", got.Username)

	_, err = svc.Profile(context.Background(), primitive.NewObjectID())
	apiErr := requireStatus(t, err, 404)
	assert.Equal(t, "user not found", apiErr.Message)
}
