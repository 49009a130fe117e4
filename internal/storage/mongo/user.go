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

type UserMongoStorage struct{}

func NewUserMongoStorage() *UserMongoStorage {
	return &UserMongoStorage{}
}

func (s *UserMongoStorage) collection() *mongo.Collection {
	return DB.Collection("users")
}

func (s *UserMongoStorage) CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	user := &models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		Posts:      []primitive.ObjectID{},
		Comments:   []primitive.ObjectID{},
		LikedPosts: []primitive.ObjectID{},
	}

	if _, err := s.collection().InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserMongoStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserMongoStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserMongoStorage) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	cursor, err := s.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserMongoStorage) GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}

	cursor, err := s.collection().Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserMongoStorage) UpdateUser(ctx context.Context, id string, name, email, hashedPassword *string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if email != nil {
		set["email"] = *email
	}
	if hashedPassword != nil {
		set["password"] = *hashedPassword
	}
	if len(set) == 0 {
		return s.GetUserByID(ctx, id)
	}

	// FindOneAndUpdate returns the pre-update document by default, which is
	// exactly the snapshot contract.
	var prior models.User
	err = s.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}).Decode(&prior)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prior, nil
}

func (s *UserMongoStorage) DeleteUser(ctx context.Context, id string) (bool, error) {
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
