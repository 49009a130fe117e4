package user

import (
	"context"

	"github.com/Markosdlpz02/Practica5/models"
)

// UserStorage is the users collection contract. IDs cross the interface as
// their canonical hex encoding. Lookups that match nothing return
// (nil, nil); only driver failures (malformed id, connectivity) are errors.
type UserStorage interface {
	CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	// UpdateUser overwrites the provided fields and returns the PRE-update
	// snapshot of the document, or (nil, nil) if the user does not exist.
	UpdateUser(ctx context.Context, id string, name, email, hashedPassword *string) (*models.User, error)
	// DeleteUser reports true iff exactly one document was removed.
	DeleteUser(ctx context.Context, id string) (bool, error)
}
