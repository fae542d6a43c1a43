// Package reporting derives dashboard numbers from the in-memory registry.
// It only reads; all mutation goes through the lifecycle service.
package reporting

import (
	"time"

	"hotelops/models"
	"hotelops/services/roomblock"
	"hotelops/services/timeline"
)

// PortfolioSummary aggregates the loaded blocks for occupancy dashboards.
type PortfolioSummary struct {
	Blocks           int                          `json:"blocks"`
	BlocksByStatus   map[models.BlockStatus]int   `json:"blocksByStatus"`
	BlocksByEvent    map[models.EventType]int     `json:"blocksByEventType"`
	TotalRooms       int                          `json:"totalRooms"`
	RoomsBooked      int                          `json:"roomsBooked"`
	EstimatedRevenue float64                      `json:"estimatedRevenue"`
}

// Reporter computes summaries over registry contents.
type Reporter struct {
	Reg         *roomblock.Registry
	DefaultRate float64
	Now         func() time.Time // injectable for tests
}

// NewReporter builds a reporter over the given registry.
func NewReporter(reg *roomblock.Registry, defaultRate float64) *Reporter {
	return &Reporter{Reg: reg, DefaultRate: defaultRate, Now: time.Now}
}

// Summarize aggregates the blocks matching the filter. An empty filter
// covers the whole registry.
func (r *Reporter) Summarize(filter models.BlockFilter) PortfolioSummary {
	blocks := r.Reg.Filter(filter)
	summary := PortfolioSummary{
		Blocks:         len(blocks),
		BlocksByStatus: make(map[models.BlockStatus]int),
		BlocksByEvent:  make(map[models.EventType]int),
	}
	for i := range blocks {
		b := &blocks[i]
		summary.BlocksByStatus[b.Status]++
		summary.BlocksByEvent[b.EventType]++
		summary.TotalRooms += b.TotalRooms
		summary.RoomsBooked += b.RoomsBooked
		summary.EstimatedRevenue += roomblock.EstimateRevenue(b, r.DefaultRate)
	}
	return summary
}

// DaysUntilEvent returns the signed whole-day distance from today to the
// block's start date. Negative means the event is overdue or already
// running; callers color-code that case, so it is never clamped to zero.
func (r *Reporter) DaysUntilEvent(block *models.RoomBlock) int {
	today := r.Now().UTC().Truncate(24 * time.Hour)
	return timeline.DaysBetween(today, block.StartDate)
}
