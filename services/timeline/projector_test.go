package timeline

import (
	"testing"
	"time"

	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockWithRoom(id string, roomID, roomNumber string, start, end time.Time) models.RoomBlock {
	return models.RoomBlock{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		Rooms: []models.BlockRoom{
			{RoomID: roomID, RoomNumber: roomNumber, Status: models.RoomStatusBlocked},
		},
	}
}

func TestProjectMatchesByEitherIdentity(t *testing.T) {
	viewport := models.Viewport{Start: date(2024, 6, 1), End: date(2024, 6, 30)}
	blocks := []models.RoomBlock{
		blockWithRoom("b1", "room-1", "", date(2024, 6, 10), date(2024, 6, 15)),
		blockWithRoom("b2", "", "101", date(2024, 6, 5), date(2024, 6, 8)),
		blockWithRoom("b3", "room-9", "900", date(2024, 6, 5), date(2024, 6, 8)),
	}

	// Matched via room id.
	segments, err := Project(models.Room{ID: "room-1"}, viewport, blocks)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "b1", segments[0].BlockID)

	// Matched via room number only.
	segments, err = Project(models.Room{Number: "101"}, viewport, blocks)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "b2", segments[0].BlockID)
}

func TestProjectDiscardsNonOverlappingBlocks(t *testing.T) {
	viewport := models.Viewport{Start: date(2024, 6, 1), End: date(2024, 6, 30)}
	blocks := []models.RoomBlock{
		blockWithRoom("visible", "room-1", "101", date(2024, 6, 10), date(2024, 6, 15)),
		blockWithRoom("before", "room-1", "101", date(2024, 5, 1), date(2024, 5, 20)),
		blockWithRoom("after", "room-1", "101", date(2024, 7, 2), date(2024, 7, 9)),
	}

	segments, err := Project(models.Room{ID: "room-1"}, viewport, blocks)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "visible", segments[0].BlockID)
	assert.False(t, segments[0].IsPartial)
}

func TestProjectPreservesInputOrder(t *testing.T) {
	viewport := models.Viewport{Start: date(2024, 6, 1), End: date(2024, 6, 30)}
	blocks := []models.RoomBlock{
		blockWithRoom("first", "room-1", "", date(2024, 6, 20), date(2024, 6, 25)),
		blockWithRoom("second", "room-1", "", date(2024, 6, 2), date(2024, 6, 5)),
	}

	segments, err := Project(models.Room{ID: "room-1"}, viewport, blocks)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "first", segments[0].BlockID)
	assert.Equal(t, "second", segments[1].BlockID)
}

func TestProjectRejectsInvalidViewport(t *testing.T) {
	_, err := Project(models.Room{ID: "room-1"},
		models.Viewport{Start: date(2024, 6, 30), End: date(2024, 6, 1)}, nil)
	assert.Error(t, err)
}

func TestProjectPartialFlagsOnClippedEdges(t *testing.T) {
	viewport := models.Viewport{Start: date(2024, 6, 10), End: date(2024, 6, 20)}
	blocks := []models.RoomBlock{
		blockWithRoom("clipped-left", "room-1", "", date(2024, 6, 5), date(2024, 6, 12)),
		blockWithRoom("clipped-right", "room-1", "", date(2024, 6, 18), date(2024, 6, 25)),
	}

	segments, err := Project(models.Room{ID: "room-1"}, viewport, blocks)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	for _, seg := range segments {
		assert.True(t, seg.IsPartial, seg.BlockID)
	}
	assert.Equal(t, date(2024, 6, 10), segments[0].EffectiveStart)
	assert.Equal(t, date(2024, 6, 20), segments[1].EffectiveEnd)
}
