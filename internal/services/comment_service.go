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

type CommentService struct {
	comments repository.CommentRepository
}

func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

type CommentPage struct {
	Comments      []models.Comment `json:"comments"`
	TotalComments int64            `json:"totalComments"`
}

func (s *CommentService) ListByVideo(ctx context.Context, video primitive.ObjectID, page, limit int64) (*CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	comments, total, err := s.comments.ListByVideo(ctx, video, page, limit)
	if err != nil {
		return nil, utils.Internal("failed to fetch comments")
	}
	return &CommentPage{Comments: comments, TotalComments: total}, nil
}

func (s *CommentService) Add(ctx context.Context, video, owner primitive.ObjectID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.BadRequest("please add a comment")
	}
	c := &models.Comment{
		Content:   content,
		Video:     video,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, utils.Internal("something went wrong while making new comment")
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.BadRequest("new comment is required")
	}
	c, err := s.comments.UpdateOwned(ctx, id, owner, content)
	if err != nil {
		return nil, mapRepoErr(err, "comment not found or not authorized to update", "failed to update comment")
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.comments.DeleteOwned(ctx, id, owner); err != nil {
		return mapRepoErr(err, "comment not found or not authorized to delete", "failed to delete comment")
	}
	return nil
}
