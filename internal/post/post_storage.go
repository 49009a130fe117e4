package post

import (
	"context"

	"github.com/Markosdlpz02/Practica5/models"
)

// PostStorage is the posts collection contract. Same conventions as
// user.UserStorage: hex ids in, (nil, nil) on missing documents,
// pre-update snapshots from UpdatePost.
type PostStorage interface {
	CreatePost(ctx context.Context, content, authorID string) (*models.Post, error)
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]*models.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []string) ([]*models.Post, error)
	// GetPostsLikedBy returns the posts whose like-set contains the user.
	GetPostsLikedBy(ctx context.Context, userID string) ([]*models.Post, error)
	UpdatePost(ctx context.Context, id string, content *string) (*models.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)

	// AddLike appends the user to the post's like-set and returns the
	// refreshed post. The check-and-append is a single atomic document
	// update; a like already present yields domain.ErrAlreadyLiked.
	AddLike(ctx context.Context, postID, userID string) (*models.Post, error)
	// RemoveLike is the inverse; an absent like yields domain.ErrHasNotLiked.
	RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error)

	// AttachComment / DetachComment maintain the post's comment-id array.
	AttachComment(ctx context.Context, postID, commentID string) error
	DetachComment(ctx context.Context, postID, commentID string) error
}
