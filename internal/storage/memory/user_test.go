package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserMemoryStorage_CreateAndGetUser(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	t.Run("Successfully create user", func(t *testing.T) {
		user, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "hashed-secret")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.False(t, user.ID.IsZero())
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "ana@x.com", user.Email)
		assert.Equal(t, "hashed-secret", user.Password)
		assert.Empty(t, user.Posts)
		assert.Empty(t, user.Comments)
		assert.Empty(t, user.LikedPosts)

		saved, err := storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, user.Name, saved.Name)
		assert.Equal(t, user.Email, saved.Email)
		assert.Equal(t, user.Password, saved.Password)
	})

	t.Run("Nil result for unknown user", func(t *testing.T) {
		user, err := storage.GetUserByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Error for malformed id", func(t *testing.T) {
		user, err := storage.GetUserByID(ctx, "bad-id")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserMemoryStorage_GetUserByEmail(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "hashed")
	require.NoError(t, err)

	t.Run("Find by email", func(t *testing.T) {
		user, err := storage.GetUserByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("Nil result for unknown email", func(t *testing.T) {
		user, err := storage.GetUserByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserMemoryStorage_GetUsersByIDs(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	ana, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "h1")
	require.NoError(t, err)
	bob, err := storage.CreateUser(ctx, "Bob", "bob@x.com", "h2")
	require.NoError(t, err)

	t.Run("Returns the requested users", func(t *testing.T) {
		users, err := storage.GetUsersByIDs(ctx, []string{ana.ID.Hex(), bob.ID.Hex()})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Dangling references are skipped", func(t *testing.T) {
		users, err := storage.GetUsersByIDs(ctx, []string{ana.ID.Hex(), primitive.NewObjectID().Hex()})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, ana.ID, users[0].ID)
	})

	t.Run("Error for malformed id in the list", func(t *testing.T) {
		users, err := storage.GetUsersByIDs(ctx, []string{ana.ID.Hex(), "bad-id"})
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestUserMemoryStorage_UpdateUser(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	user, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "hashed")
	require.NoError(t, err)

	t.Run("Returns the pre-update snapshot", func(t *testing.T) {
		newName := "Ana Maria"
		newEmail := "ana.maria@x.com"
		prior, err := storage.UpdateUser(ctx, user.ID.Hex(), &newName, &newEmail, nil)
		require.NoError(t, err)
		require.NotNil(t, prior)
		assert.Equal(t, "Ana", prior.Name)
		assert.Equal(t, "ana@x.com", prior.Email)

		current, err := storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", current.Name)
		assert.Equal(t, "ana.maria@x.com", current.Email)
		// Password untouched when nil.
		assert.Equal(t, "hashed", current.Password)
	})

	t.Run("Nil result for unknown user", func(t *testing.T) {
		newName := "Nobody"
		prior, err := storage.UpdateUser(ctx, primitive.NewObjectID().Hex(), &newName, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, prior)
	})
}

func TestUserMemoryStorage_DeleteUser(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	user, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "hashed")
	require.NoError(t, err)

	t.Run("Successfully delete user", func(t *testing.T) {
		ok, err := storage.DeleteUser(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.True(t, ok)

		gone, err := storage.GetUserByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("False when user is already gone", func(t *testing.T) {
		ok, err := storage.DeleteUser(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserMemoryStorage_ReturnsCopies(t *testing.T) {
	storage := NewUserMemoryStorage()
	ctx := context.Background()

	user, err := storage.CreateUser(ctx, "Ana", "ana@x.com", "hashed")
	require.NoError(t, err)

	// Mutating a returned document must not affect the stored one.
	user.Name = "Mallory"
	saved, err := storage.GetUserByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ana", saved.Name)
}
