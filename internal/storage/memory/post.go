package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Markosdlpz02/Practica5/internal/domain"
	"github.com/Markosdlpz02/Practica5/models"
)

type PostMemoryStorage struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts: make(map[string]*models.Post),
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, content, authorID string) (*models.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:       primitive.NewObjectID(),
		Content:  content,
		Author:   author,
		Comments: []primitive.ObjectID{},
		Likes:    []primitive.ObjectID{},
	}
	s.posts[post.ID.Hex()] = post

	return clonePost(post), nil
}

func (s *PostMemoryStorage) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, nil
	}
	return clonePost(post), nil
}

func (s *PostMemoryStorage) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, clonePost(post))
	}
	return posts, nil
}

func (s *PostMemoryStorage) GetPostsByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*models.Post
	for _, post := range s.posts {
		if post.Author == author {
			posts = append(posts, clonePost(post))
		}
	}
	return posts, nil
}

func (s *PostMemoryStorage) GetPostsByIDs(ctx context.Context, ids []string) ([]*models.Post, error) {
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*models.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := s.posts[id]; exists {
			posts = append(posts, clonePost(post))
		}
	}
	return posts, nil
}

func (s *PostMemoryStorage) GetPostsLikedBy(ctx context.Context, userID string) ([]*models.Post, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*models.Post
	for _, post := range s.posts {
		if containsID(post.Likes, user) {
			posts = append(posts, clonePost(post))
		}
	}
	return posts, nil
}

func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id string, content *string) (*models.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, nil
	}

	prior := clonePost(post)
	if content != nil {
		post.Content = *content
	}
	return prior, nil
}

func (s *PostMemoryStorage) DeletePost(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.posts[id]
	if !exists {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}

// AddLike is atomic under the storage mutex, so two concurrent likes from
// the same user cannot both pass the membership check.
func (s *PostMemoryStorage) AddLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	if _, err := primitive.ObjectIDFromHex(postID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return nil, domain.ErrPostNotFound
	}
	if containsID(post.Likes, user) {
		return nil, domain.ErrAlreadyLiked
	}

	post.Likes = append(post.Likes, user)
	return clonePost(post), nil
}

func (s *PostMemoryStorage) RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	if _, err := primitive.ObjectIDFromHex(postID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return nil, domain.ErrPostNotFound
	}
	if !containsID(post.Likes, user) {
		return nil, domain.ErrHasNotLiked
	}

	post.Likes = removeID(post.Likes, user)
	return clonePost(post), nil
}

// AttachComment is a no-op when the post has vanished; the cascade is
// best-effort on both backends.
func (s *PostMemoryStorage) AttachComment(ctx context.Context, postID, commentID string) error {
	comment, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return err
	}
	if _, err := primitive.ObjectIDFromHex(postID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return nil
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (s *PostMemoryStorage) DetachComment(ctx context.Context, postID, commentID string) error {
	comment, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return err
	}
	if _, err := primitive.ObjectIDFromHex(postID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[postID]
	if !exists {
		return nil
	}
	post.Comments = removeID(post.Comments, comment)
	return nil
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Comments = append([]primitive.ObjectID{}, p.Comments...)
	c.Likes = append([]primitive.ObjectID{}, p.Likes...)
	return &c
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	result := make([]primitive.ObjectID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			result = append(result, candidate)
		}
	}
	return result
}
