package comment

import (
	"context"

	"github.com/Markosdlpz02/Practica5/models"
)

// CommentStorage is the comments collection contract.
type CommentStorage interface {
	CreateComment(ctx context.Context, text, authorID, postID string) (*models.Comment, error)
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetAllComments(ctx context.Context) ([]*models.Comment, error)
	GetCommentsByAuthor(ctx context.Context, authorID string) ([]*models.Comment, error)
	GetCommentsByIDs(ctx context.Context, ids []string) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, id string, text *string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) (bool, error)
}
