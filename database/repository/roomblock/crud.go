// File: database/repository/roomblock/crud.go
package roomblockRepo

import (
	"context"
	"fmt"
	"time"

	"hotelops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new room block document.
func (repo *mongoRoomBlockRepo) Create(ctx context.Context, block *models.RoomBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, block)
	if err != nil {
		return fmt.Errorf("error creating room block: %w", err)
	}
	return nil
}

// GetByID retrieves a room block by its ID.
func (repo *mongoRoomBlockRepo) GetByID(ctx context.Context, blockID string) (*models.RoomBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.RoomBlock
	err := repo.coll.FindOne(ctx, bson.M{"id": blockID}).Decode(&block)
	if err != nil {
		return nil, fmt.Errorf("room block not found: %w", err)
	}
	return &block, nil
}

// Update replaces an existing room block document wholesale. Partial merges
// are not supported; the lifecycle service always writes a complete block.
func (repo *mongoRoomBlockRepo) Update(ctx context.Context, blockID string, block *models.RoomBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": blockID}
	res, err := repo.coll.ReplaceOne(ctx, filter, block)
	if err != nil {
		return fmt.Errorf("error updating room block %s: %w", blockID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("room block %s: %w", blockID, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a room block document.
func (repo *mongoRoomBlockRepo) Delete(ctx context.Context, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": blockID}
	res, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting room block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("room block %s: %w", blockID, mongo.ErrNoDocuments)
	}
	return nil
}
