package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentMemoryStorage_CreateAndGetComment(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()
	author := primitive.NewObjectID()
	post := primitive.NewObjectID()

	t.Run("Successfully create comment", func(t *testing.T) {
		comment, err := storage.CreateComment(ctx, "nice", author.Hex(), post.Hex())
		require.NoError(t, err)
		require.NotNil(t, comment)

		assert.False(t, comment.ID.IsZero())
		assert.Equal(t, "nice", comment.Text)
		assert.Equal(t, author, comment.Author)
		assert.Equal(t, post, comment.Post)

		saved, err := storage.GetCommentByID(ctx, comment.ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, comment.Text, saved.Text)
	})

	t.Run("Error for malformed ids", func(t *testing.T) {
		comment, err := storage.CreateComment(ctx, "nice", "bad-id", post.Hex())
		assert.Error(t, err)
		assert.Nil(t, comment)

		comment, err = storage.CreateComment(ctx, "nice", author.Hex(), "bad-id")
		assert.Error(t, err)
		assert.Nil(t, comment)
	})

	t.Run("Nil result for unknown comment", func(t *testing.T) {
		comment, err := storage.GetCommentByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, comment)
	})
}

func TestCommentMemoryStorage_Lookups(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()
	ana := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	post := primitive.NewObjectID()

	first, err := storage.CreateComment(ctx, "first", ana.Hex(), post.Hex())
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, "second", ana.Hex(), post.Hex())
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, "third", bob.Hex(), post.Hex())
	require.NoError(t, err)

	t.Run("All comments", func(t *testing.T) {
		comments, err := storage.GetAllComments(ctx)
		require.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("By author", func(t *testing.T) {
		comments, err := storage.GetCommentsByAuthor(ctx, ana.Hex())
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("By ids, skipping dangling references", func(t *testing.T) {
		comments, err := storage.GetCommentsByIDs(ctx, []string{first.ID.Hex(), primitive.NewObjectID().Hex()})
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, first.ID, comments[0].ID)
	})
}

func TestCommentMemoryStorage_UpdateComment(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()

	comment, err := storage.CreateComment(ctx, "nice", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)

	t.Run("Returns the pre-update snapshot", func(t *testing.T) {
		newText := "very nice"
		prior, err := storage.UpdateComment(ctx, comment.ID.Hex(), &newText)
		require.NoError(t, err)
		require.NotNil(t, prior)
		assert.Equal(t, "nice", prior.Text)

		current, err := storage.GetCommentByID(ctx, comment.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "very nice", current.Text)
	})

	t.Run("Nil result for unknown comment", func(t *testing.T) {
		newText := "nothing"
		prior, err := storage.UpdateComment(ctx, primitive.NewObjectID().Hex(), &newText)
		require.NoError(t, err)
		assert.Nil(t, prior)
	})
}

func TestCommentMemoryStorage_DeleteComment(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()

	comment, err := storage.CreateComment(ctx, "nice", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)

	ok, err := storage.DeleteComment(ctx, comment.ID.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	gone, err := storage.GetCommentByID(ctx, comment.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, gone)

	ok, err = storage.DeleteComment(ctx, comment.ID.Hex())
	require.NoError(t, err)
	assert.False(t, ok)
}
