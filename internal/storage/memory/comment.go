package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Markosdlpz02/Practica5/models"
)

// CommentMemoryStorage stores comments only; referential checks and the
// parent post's comment array live with the caller (resolver layer).
type CommentMemoryStorage struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
}

func NewCommentMemoryStorage() *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments: make(map[string]*models.Comment),
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, text, authorID, postID string) (*models.Comment, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}
	post, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := &models.Comment{
		ID:     primitive.NewObjectID(),
		Text:   text,
		Author: author,
		Post:   post,
	}
	s.comments[comment.ID.Hex()] = comment

	c := *comment
	return &c, nil
}

func (s *CommentMemoryStorage) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment, exists := s.comments[id]
	if !exists {
		return nil, nil
	}
	c := *comment
	return &c, nil
}

func (s *CommentMemoryStorage) GetAllComments(ctx context.Context) ([]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]*models.Comment, 0, len(s.comments))
	for _, comment := range s.comments {
		c := *comment
		comments = append(comments, &c)
	}
	return comments, nil
}

func (s *CommentMemoryStorage) GetCommentsByAuthor(ctx context.Context, authorID string) ([]*models.Comment, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []*models.Comment
	for _, comment := range s.comments {
		if comment.Author == author {
			c := *comment
			comments = append(comments, &c)
		}
	}
	return comments, nil
}

func (s *CommentMemoryStorage) GetCommentsByIDs(ctx context.Context, ids []string) ([]*models.Comment, error) {
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]*models.Comment, 0, len(ids))
	for _, id := range ids {
		if comment, exists := s.comments[id]; exists {
			c := *comment
			comments = append(comments, &c)
		}
	}
	return comments, nil
}

func (s *CommentMemoryStorage) UpdateComment(ctx context.Context, id string, text *string) (*models.Comment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment, exists := s.comments[id]
	if !exists {
		return nil, nil
	}

	prior := *comment
	if text != nil {
		comment.Text = *text
	}
	return &prior, nil
}

func (s *CommentMemoryStorage) DeleteComment(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.comments[id]
	if !exists {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}
