// File: database/repository/roomblock/queries.go
package roomblockRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"hotelops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultPageSize = 20

// List returns one page of room blocks matching the filter, sorted by start
// date (ascending unless descending is requested), with creation time as the
// tie breaker so repeated queries page stably.
func (repo *mongoRoomBlockRepo) List(ctx context.Context, filter models.BlockFilter) (*models.BlockPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"block_name": pattern},
			bson.M{"group_name": pattern},
			bson.M{"contact_person.name": pattern},
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting room blocks: %w", err)
	}

	sortDir := 1
	if filter.Descending {
		sortDir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: sortDir}, {Key: "created_at", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing room blocks: %w", err)
	}
	defer cursor.Close(ctx)

	blocks := []models.RoomBlock{}
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding room blocks: %w", err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &models.BlockPage{
		Data: blocks,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// ListAll returns every room block, ordered by creation time. Used by the
// registry refresh worker.
func (repo *mongoRoomBlockRepo) ListAll(ctx context.Context) ([]models.RoomBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing room blocks: %w", err)
	}
	defer cursor.Close(ctx)

	blocks := []models.RoomBlock{}
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding room blocks: %w", err)
	}
	return blocks, nil
}
