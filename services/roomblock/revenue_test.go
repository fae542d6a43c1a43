package roomblock

import (
	"testing"

	"hotelops/models"

	"github.com/stretchr/testify/assert"
)

func revenueBlock() *models.RoomBlock {
	return &models.RoomBlock{
		ID:        "b1",
		StartDate: date(2024, 6, 10),
		EndDate:   date(2024, 6, 15), // 5 nights
		Rooms: []models.BlockRoom{
			{RoomID: "r1", Status: models.RoomStatusReserved},
			{RoomID: "r2", Status: models.RoomStatusOccupied},
			{RoomID: "r3", Status: models.RoomStatusBlocked},
		},
		TotalRooms:     3,
		RoomsBooked:    2,
		AvailableRooms: 1,
	}
}

func TestComputeUtilization(t *testing.T) {
	block := revenueBlock()
	assert.Equal(t, 67, ComputeUtilization(block)) // 2/3 rounds to 67

	block.RoomsBooked = 0
	assert.Equal(t, 0, ComputeUtilization(block))

	block.RoomsBooked = 3
	assert.Equal(t, 100, ComputeUtilization(block))
}

func TestComputeUtilizationZeroRooms(t *testing.T) {
	block := &models.RoomBlock{ID: "empty"}
	assert.Equal(t, 0, ComputeUtilization(block))
}

func TestEstimateRevenueRoomRatesWin(t *testing.T) {
	block := revenueBlock()
	block.Rooms[0].Rate = 120
	block.Rooms[1].Rate = 80
	block.BlockRate = 999 // ignored once any room carries a rate

	assert.InDelta(t, (120+80)*5, EstimateRevenue(block, 100), 1e-9)
}

func TestEstimateRevenueBlockRateFallback(t *testing.T) {
	block := revenueBlock()
	block.BlockRate = 90

	assert.InDelta(t, 90*2*5, EstimateRevenue(block, 100), 1e-9)
}

func TestEstimateRevenueDefaultRateFallback(t *testing.T) {
	block := revenueBlock()

	assert.InDelta(t, 100*2*5, EstimateRevenue(block, 100), 1e-9)
}

func TestNightsMinimumOne(t *testing.T) {
	block := revenueBlock()
	assert.Equal(t, 5, Nights(block))

	block.EndDate = block.StartDate
	assert.Equal(t, 1, Nights(block))
}
