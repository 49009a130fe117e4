package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Markosdlpz02/Practica5/models"
)

// UserMemoryStorage keeps users in a mutex-guarded map keyed by the hex id.
// Ids are real ObjectIDs so that malformed-id behavior matches the mongo
// backend.
type UserMemoryStorage struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users: make(map[string]*models.User),
	}
}

func (s *UserMemoryStorage) CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		Posts:      []primitive.ObjectID{},
		Comments:   []primitive.ObjectID{},
		LikedPosts: []primitive.ObjectID{},
	}
	s.users[user.ID.Hex()] = user

	return cloneUser(user), nil
}

func (s *UserMemoryStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *UserMemoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (s *UserMemoryStorage) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	return users, nil
}

func (s *UserMemoryStorage) GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Dangling references are skipped, not errors.
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if user, exists := s.users[id]; exists {
			users = append(users, cloneUser(user))
		}
	}
	return users, nil
}

func (s *UserMemoryStorage) UpdateUser(ctx context.Context, id string, name, email, hashedPassword *string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		return nil, nil
	}

	prior := cloneUser(user)
	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	if hashedPassword != nil {
		user.Password = *hashedPassword
	}
	return prior, nil
}

func (s *UserMemoryStorage) DeleteUser(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[id]
	if !exists {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// cloneUser copies the document so callers never alias the stored value.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.Posts = append([]primitive.ObjectID{}, u.Posts...)
	c.Comments = append([]primitive.ObjectID{}, u.Comments...)
	c.LikedPosts = append([]primitive.ObjectID{}, u.LikedPosts...)
	return &c
}
