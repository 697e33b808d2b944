package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samir-codes-123/videotube-backend/internal/storage"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

// fakeStore stands in for the media host. Uploads mint deterministic URLs;
// deletes record the URL they removed.
type fakeStore struct {
	uploads     int
	deleted     []string
	failUploads map[storage.Kind]bool
	failDeletes map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		failUploads: map[storage.Kind]bool{},
		failDeletes: map[string]bool{},
	}
}

func (f *fakeStore) Upload(_ context.Context, _ string, kind storage.Kind) (storage.Asset, error) {
	if f.failUploads[kind] {
		return storage.Asset{}, errors.New("upload refused")
	}
	f.uploads++
	a := storage.Asset{URL: fmt.Sprintf("https://cdn.test/%s-%d", kind, f.uploads)}
	if kind == storage.KindVideo {
		a.Duration = 12.5
	}
	return a, nil
}

func (f *fakeStore) Delete(_ context.Context, rawURL string, _ storage.Kind) bool {
	if f.failDeletes[rawURL] {
		return false
	}
	f.deleted = append(f.deleted, rawURL)
	return true
}

func requireStatus(t *testing.T, err error, status int) *utils.APIError {
	t.Helper()
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}
