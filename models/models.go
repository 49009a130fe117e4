package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User document. The relation arrays are created empty at registration and
// kept for document-shape compatibility; relationship reads go through
// reverse lookups instead (see the graph package).
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Email      string               `bson:"email"`
	Password   string               `bson:"password"`
	Posts      []primitive.ObjectID `bson:"posts"`
	Comments   []primitive.ObjectID `bson:"comments"`
	LikedPosts []primitive.ObjectID `bson:"likedPosts"`
}

// Post document
type Post struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Content  string               `bson:"content"`
	Author   primitive.ObjectID   `bson:"author"`
	Comments []primitive.ObjectID `bson:"comments"`
	Likes    []primitive.ObjectID `bson:"likes"`
}

// Comment document
type Comment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Text   string             `bson:"text"`
	Author primitive.ObjectID `bson:"author"`
	Post   primitive.ObjectID `bson:"post"`
}
