package mongo

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Markosdlpz02/Practica5/internal/config"
)

var (
	client *mongo.Client
	DB     *mongo.Database
)

// GetDB returns the global database handle (for testing).
func GetDB() *mongo.Database {
	return DB
}

// InitDB connects to MongoDB and sets the global DB handle. Expects
// MONGO_URI and MONGO_DB in the environment.
func InitDB(ctx context.Context) error {
	uri := config.GetEnv("MONGO_URI")
	name := config.GetEnv("MONGO_DB")

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping the database: %w", err)
	}

	client = c
	DB = c.Database(name)
	log.Println("Successfully connected to the database.")
	return nil
}

// CloseDB disconnects the client.
func CloseDB(ctx context.Context) error {
	if client == nil {
		return nil
	}

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}

	client = nil
	DB = nil
	log.Println("Database connection closed.")
	return nil
}

// InitDBWithDatabase is for testing (allows injecting a database handle).
func InitDBWithDatabase(db *mongo.Database) {
	DB = db
}

// parseIDs converts canonical hex ids into ObjectIDs, failing on the first
// malformed one.
func parseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
