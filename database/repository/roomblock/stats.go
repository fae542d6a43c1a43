// File: database/repository/roomblock/stats.go
package roomblockRepo

import (
	"context"
	"fmt"
	"time"

	"hotelops/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Stats aggregates block counts by status and event type, plus portfolio
// room totals, in a single pipeline pass.
func (repo *mongoRoomBlockRepo) Stats(ctx context.Context) (*models.BlockStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$facet": bson.M{
				"byStatus": []bson.M{
					{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
				},
				"byEventType": []bson.M{
					{"$group": bson.M{"_id": "$event_type", "count": bson.M{"$sum": 1}}},
				},
				"rooms": []bson.M{
					{"$group": bson.M{
						"_id":          nil,
						"total_rooms":  bson.M{"$sum": "$total_rooms"},
						"rooms_booked": bson.M{"$sum": "$rooms_booked"},
					}},
				},
			},
		},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating room block stats: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ByStatus []struct {
			ID    models.BlockStatus `bson:"_id"`
			Count int64              `bson:"count"`
		} `bson:"byStatus"`
		ByEventType []struct {
			ID    models.EventType `bson:"_id"`
			Count int64            `bson:"count"`
		} `bson:"byEventType"`
		Rooms []struct {
			TotalRooms  int64 `bson:"total_rooms"`
			RoomsBooked int64 `bson:"rooms_booked"`
		} `bson:"rooms"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("error decoding room block stats: %w", err)
	}

	stats := &models.BlockStats{
		StatusStats:    map[models.BlockStatus]int64{},
		EventTypeStats: map[models.EventType]int64{},
	}
	if len(raw) == 0 {
		return stats, nil
	}
	for _, s := range raw[0].ByStatus {
		stats.StatusStats[s.ID] = s.Count
	}
	for _, e := range raw[0].ByEventType {
		stats.EventTypeStats[e.ID] = e.Count
	}
	if len(raw[0].Rooms) > 0 {
		stats.TotalRooms = raw[0].Rooms[0].TotalRooms
		stats.RoomsBooked = raw[0].Rooms[0].RoomsBooked
	}
	return stats, nil
}
