// File: database/repository/roomblock/interface.go
package roomblockRepo

import (
	"context"
	"log"

	"hotelops/config"
	"hotelops/database"
	"hotelops/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomBlockRepository is the system of record for room blocks. The in-memory
// registry mirrors it and is only updated once a repository call succeeds.
type RoomBlockRepository interface {
	Create(ctx context.Context, block *models.RoomBlock) error
	GetByID(ctx context.Context, blockID string) (*models.RoomBlock, error)
	Update(ctx context.Context, blockID string, block *models.RoomBlock) error
	Delete(ctx context.Context, blockID string) error
	List(ctx context.Context, filter models.BlockFilter) (*models.BlockPage, error)
	ListAll(ctx context.Context) ([]models.RoomBlock, error)
	Stats(ctx context.Context) (*models.BlockStats, error)
}

type mongoRoomBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomBlockRepo constructs a new MongoDB RoomBlockRepository.
func NewMongoRoomBlockRepo() RoomBlockRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoRoomBlockRepo{
		coll: db.Collection("room_blocks"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("room block repo: %v", err)
	}
	return repo
}
