package models

import "time"

// Room identifies one physical room on the tape chart. Either identity
// field may be populated depending on the upstream data source.
type Room struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// Viewport is the visible date window of the tape chart grid.
type Viewport struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimelineOverlaySegment is a renderable slice of a block on the tape chart.
// Derived per projection, never persisted.
type TimelineOverlaySegment struct {
	BlockID string `json:"blockId"`
	RoomID  string `json:"roomId"`

	// Horizontal position and width within the viewport, both in [0,1].
	OffsetFraction float64 `json:"offsetFraction"`
	WidthFraction  float64 `json:"widthFraction"`

	// True when the block's real date range extends past either viewport edge.
	IsPartial bool `json:"isPartial"`

	// The clipped date range actually drawn.
	EffectiveStart time.Time `json:"effectiveStart"`
	EffectiveEnd   time.Time `json:"effectiveEnd"`
}
