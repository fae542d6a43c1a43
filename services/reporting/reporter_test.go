package reporting

import (
	"testing"
	"time"

	"hotelops/models"
	"hotelops/services/roomblock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seededRegistry() *roomblock.Registry {
	reg := roomblock.NewRegistry()
	reg.Upsert(&models.RoomBlock{
		ID: "conf", BlockName: "Tech Summit",
		EventType: models.EventTypeConference, Status: models.BlockStatusActive,
		StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12),
		TotalRooms: 10, RoomsBooked: 4,
	})
	reg.Upsert(&models.RoomBlock{
		ID: "wed", BlockName: "Smith Wedding",
		EventType: models.EventTypeWedding, Status: models.BlockStatusPartiallyReleased,
		StartDate: date(2024, 6, 20), EndDate: date(2024, 6, 22),
		TotalRooms: 8, RoomsBooked: 5, RoomsReleased: 1,
	})
	reg.Upsert(&models.RoomBlock{
		ID: "gone", BlockName: "Cancelled Gala",
		EventType: models.EventTypeOther, Status: models.BlockStatusCancelled,
		StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 3),
		TotalRooms: 6, RoomsReleased: 6,
	})
	return reg
}

func TestSummarizeWholeRegistry(t *testing.T) {
	r := NewReporter(seededRegistry(), 100)

	summary := r.Summarize(models.BlockFilter{})
	assert.Equal(t, 3, summary.Blocks)
	assert.Equal(t, 24, summary.TotalRooms)
	assert.Equal(t, 9, summary.RoomsBooked)
	assert.Equal(t, 1, summary.BlocksByStatus[models.BlockStatusActive])
	assert.Equal(t, 1, summary.BlocksByStatus[models.BlockStatusPartiallyReleased])
	assert.Equal(t, 1, summary.BlocksByStatus[models.BlockStatusCancelled])
	assert.Equal(t, 1, summary.BlocksByEvent[models.EventTypeConference])
	assert.Equal(t, 1, summary.BlocksByEvent[models.EventTypeWedding])
	assert.Equal(t, 1, summary.BlocksByEvent[models.EventTypeOther])
}

func TestSummarizeFilteredSubset(t *testing.T) {
	r := NewReporter(seededRegistry(), 100)

	summary := r.Summarize(models.BlockFilter{Status: models.BlockStatusActive})
	assert.Equal(t, 1, summary.Blocks)
	assert.Equal(t, 10, summary.TotalRooms)
	assert.Equal(t, 4, summary.RoomsBooked)
}

func TestSummarizeRevenueUsesDefaultRate(t *testing.T) {
	reg := roomblock.NewRegistry()
	reg.Upsert(&models.RoomBlock{
		ID: "b1", EventType: models.EventTypeConference, Status: models.BlockStatusActive,
		StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), // 2 nights
		TotalRooms: 4, RoomsBooked: 3,
	})
	r := NewReporter(reg, 150)

	summary := r.Summarize(models.BlockFilter{})
	assert.InDelta(t, 150*3*2, summary.EstimatedRevenue, 1e-9)
}

func TestDaysUntilEventSigned(t *testing.T) {
	r := NewReporter(seededRegistry(), 100)
	r.Now = func() time.Time { return date(2024, 6, 15) }

	upcoming, ok := seededBlock(r, "wed")
	require.True(t, ok)
	assert.Equal(t, 5, r.DaysUntilEvent(upcoming))

	// Overdue blocks report negative days; the console color-codes them.
	started, ok := seededBlock(r, "conf")
	require.True(t, ok)
	assert.Equal(t, -5, r.DaysUntilEvent(started))
}

func seededBlock(r *Reporter, id string) (*models.RoomBlock, bool) {
	return r.Reg.Get(id)
}
