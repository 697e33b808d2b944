package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/repository"
)

func TestSubscriptionToggleRoundTrip(t *testing.T) {
	svc := NewSubscriptionService(repository.NewMemorySubscriptionRepo())
	channel := primitive.NewObjectID()
	subscriber := primitive.NewObjectID()

	sub, added, err := svc.Toggle(context.Background(), channel, subscriber)
	require.NoError(t, err)
	assert.True(t, added)
	require.NotNil(t, sub)
	assert.Equal(t, channel, sub.Channel)
	assert.Equal(t, subscriber, sub.Subscriber)

	sub, added, err = svc.Toggle(context.Background(), channel, subscriber)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Nil(t, sub)
}

func TestSubscriptionLists(t *testing.T) {
	svc := NewSubscriptionService(repository.NewMemorySubscriptionRepo())
	channel := primitive.NewObjectID()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	otherChannel := primitive.NewObjectID()

	for _, sub := range []primitive.ObjectID{alice, bob} {
		_, _, err := svc.Toggle(context.Background(), channel, sub)
		require.NoError(t, err)
	}
	_, _, err := svc.Toggle(context.Background(), otherChannel, alice)
	require.NoError(t, err)

	subs, err := svc.ChannelSubscribers(context.Background(), channel)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	channels, err := svc.SubscribedChannels(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, channels, 2)

	channels, err = svc.SubscribedChannels(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, channel, channels[0].Channel)
}

func TestSubscriptionListsEmpty(t *testing.T) {
	svc := NewSubscriptionService(repository.NewMemorySubscriptionRepo())

	subs, err := svc.ChannelSubscribers(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, subs)

	channels, err := svc.SubscribedChannels(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, channels)
}
