package services

import (
	"errors"

	"github.com/Samir-codes-123/videotube-backend/internal/repository"
	"github.com/Samir-codes-123/videotube-backend/internal/utils"
)

// mapRepoErr translates repository failures into API errors: ErrNotFound keeps
// missing and not-owned indistinguishable, anything else is an upstream 500.
func mapRepoErr(err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(notFoundMsg)
	}
	return utils.Internal(internalMsg)
}
