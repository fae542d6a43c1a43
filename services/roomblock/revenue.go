package roomblock

import (
	"math"

	"hotelops/models"
	"hotelops/services/timeline"
)

// Nights returns the length of the block's stay in nights, never less than 1.
func Nights(block *models.RoomBlock) int {
	nights := timeline.DaysBetween(block.StartDate, block.EndDate)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ComputeUtilization returns the booked percentage of the block's rooms,
// rounded to the nearest integer. A block with no rooms reports 0.
func ComputeUtilization(block *models.RoomBlock) int {
	if block.TotalRooms == 0 {
		return 0
	}
	return int(math.Round(float64(block.RoomsBooked) / float64(block.TotalRooms) * 100))
}

// EstimateRevenue estimates the block's revenue. Rooms with explicit rates
// win; otherwise the block rate applies per booked room; otherwise the
// configured default nightly rate stands in. defaultRate comes from
// configuration rather than being baked in here.
func EstimateRevenue(block *models.RoomBlock, defaultRate float64) float64 {
	nights := float64(Nights(block))

	var rateSum float64
	rated := false
	for i := range block.Rooms {
		if block.Rooms[i].Rate > 0 {
			rateSum += block.Rooms[i].Rate
			rated = true
		}
	}
	if rated {
		return rateSum * nights
	}
	if block.BlockRate > 0 {
		return block.BlockRate * float64(block.RoomsBooked) * nights
	}
	return defaultRate * float64(block.RoomsBooked) * nights
}
