package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Markosdlpz02/Practica5/internal/domain"
	"github.com/Markosdlpz02/Practica5/models"
)

type PostMongoStorage struct{}

func NewPostMongoStorage() *PostMongoStorage {
	return &PostMongoStorage{}
}

func (s *PostMongoStorage) collection() *mongo.Collection {
	return DB.Collection("posts")
}

func (s *PostMongoStorage) CreatePost(ctx context.Context, content, authorID string) (*models.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:       primitive.NewObjectID(),
		Content:  content,
		Author:   author,
		Comments: []primitive.ObjectID{},
		Likes:    []primitive.ObjectID{},
	}

	if _, err := s.collection().InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *PostMongoStorage) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = s.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostMongoStorage) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	return s.findPosts(ctx, bson.M{})
}

func (s *PostMongoStorage) GetPostsByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}
	return s.findPosts(ctx, bson.M{"author": author})
}

func (s *PostMongoStorage) GetPostsByIDs(ctx context.Context, ids []string) ([]*models.Post, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return s.findPosts(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (s *PostMongoStorage) GetPostsLikedBy(ctx context.Context, userID string) ([]*models.Post, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return s.findPosts(ctx, bson.M{"likes": user})
}

func (s *PostMongoStorage) findPosts(ctx context.Context, filter bson.M) ([]*models.Post, error) {
	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostMongoStorage) UpdatePost(ctx context.Context, id string, content *string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	if content == nil {
		return s.GetPostByID(ctx, id)
	}

	var prior models.Post
	err = s.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"content": *content}}).Decode(&prior)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prior, nil
}

func (s *PostMongoStorage) DeletePost(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}

// AddLike performs the membership check and the append in one document
// update: the filter only matches when the like is absent, so concurrent
// duplicate likes cannot both commit.
func (s *PostMongoStorage) AddLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": oid, "likes": bson.M{"$ne": user}}

	var post models.Post
	err = s.collection().FindOneAndUpdate(ctx, filter, bson.M{"$addToSet": bson.M{"likes": user}}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the post is gone or the like already exists.
		existing, lookupErr := s.GetPostByID(ctx, postID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing == nil {
			return nil, domain.ErrPostNotFound
		}
		return nil, domain.ErrAlreadyLiked
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostMongoStorage) RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": oid, "likes": user}

	var post models.Post
	err = s.collection().FindOneAndUpdate(ctx, filter, bson.M{"$pull": bson.M{"likes": user}}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		existing, lookupErr := s.GetPostByID(ctx, postID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing == nil {
			return nil, domain.ErrPostNotFound
		}
		return nil, domain.ErrHasNotLiked
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostMongoStorage) AttachComment(ctx context.Context, postID, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return err
	}
	comment, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return err
	}

	_, err = s.collection().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"comments": comment}})
	return err
}

func (s *PostMongoStorage) DetachComment(ctx context.Context, postID, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return err
	}
	comment, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return err
	}

	_, err = s.collection().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"comments": comment}})
	return err
}
