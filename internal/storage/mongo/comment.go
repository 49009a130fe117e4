package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Markosdlpz02/Practica5/models"
)

type CommentMongoStorage struct{}

func NewCommentMongoStorage() *CommentMongoStorage {
	return &CommentMongoStorage{}
}

func (s *CommentMongoStorage) collection() *mongo.Collection {
	return DB.Collection("comments")
}

func (s *CommentMongoStorage) CreateComment(ctx context.Context, text, authorID, postID string) (*models.Comment, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}
	post, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:     primitive.NewObjectID(),
		Text:   text,
		Author: author,
		Post:   post,
	}

	if _, err := s.collection().InsertOne(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *CommentMongoStorage) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	err = s.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentMongoStorage) GetAllComments(ctx context.Context) ([]*models.Comment, error) {
	return s.findComments(ctx, bson.M{})
}

func (s *CommentMongoStorage) GetCommentsByAuthor(ctx context.Context, authorID string) ([]*models.Comment, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, err
	}
	return s.findComments(ctx, bson.M{"author": author})
}

func (s *CommentMongoStorage) GetCommentsByIDs(ctx context.Context, ids []string) ([]*models.Comment, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return s.findComments(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (s *CommentMongoStorage) findComments(ctx context.Context, filter bson.M) ([]*models.Comment, error) {
	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var comments []*models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentMongoStorage) UpdateComment(ctx context.Context, id string, text *string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	if text == nil {
		return s.GetCommentByID(ctx, id)
	}

	var prior models.Comment
	err = s.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"text": *text}}).Decode(&prior)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prior, nil
}

func (s *CommentMongoStorage) DeleteComment(ctx context.Context, id string) (bool, error) {
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
