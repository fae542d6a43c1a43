package models

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// BlockFilter narrows block list queries. Zero values mean "no constraint".
type BlockFilter struct {
	Search     string      `json:"search" form:"search"`         // matched case-insensitively against block/group/contact names
	Status     BlockStatus `json:"status" form:"status"`
	EventType  EventType   `json:"eventType" form:"eventType"`
	Descending bool        `json:"descending" form:"descending"` // sort by start date descending instead of ascending
	Page       int         `json:"page" form:"page"`
	PageSize   int         `json:"pageSize" form:"pageSize"`
}

// BlockPage is one page of blocks plus its pagination envelope.
type BlockPage struct {
	Data       []RoomBlock `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// BlockStats are the dashboard aggregates over all blocks.
type BlockStats struct {
	StatusStats    map[BlockStatus]int64 `json:"statusStats"`
	EventTypeStats map[EventType]int64   `json:"eventTypeStats"`
	TotalRooms     int64                 `json:"totalRooms"`
	RoomsBooked    int64                 `json:"roomsBooked"`
}
