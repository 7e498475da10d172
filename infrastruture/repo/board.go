package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BoardRepo handles the persistence of boards in MongoDB.
type BoardRepo struct {
	collection *mongo.Collection
}

// NewBoardRepo creates a new BoardRepo with the given MongoDB client, database name, and collection name.
func NewBoardRepo(client *mongo.Client, dbName, collectionName string) *BoardRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &BoardRepo{
		collection: collection,
	}
}

// Save inserts or replaces a board in the repository.
func (b *BoardRepo) Save(ctx context.Context, board *dmn.Board) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": board.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := b.collection.ReplaceOne(ctx, filter, board, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a board by its ID.
// Returns dmn.ErrBoardNotFound if the board does not exist.
func (b *BoardRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var board dmn.Board
	err := b.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrBoardNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}

	return &board, nil
}

// Delete removes a board by its ID.
func (b *BoardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	res, err := b.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if res.DeletedCount == 0 {
		return dmn.ErrBoardNotFound
	}

	return nil
}
