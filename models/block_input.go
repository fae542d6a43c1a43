package models

import "time"

// BlockRoomInput selects one room for inclusion in a new block.
type BlockRoomInput struct {
	RoomID     string  `json:"roomId"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Rate       float64 `json:"rate,omitempty"`
}

// CreateBlockInput is the payload for creating a room block. All rooms start
// out blocked.
type CreateBlockInput struct {
	BlockName string           `json:"blockName"`
	GroupName string           `json:"groupName"`
	EventType EventType        `json:"eventType"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Rooms     []BlockRoomInput `json:"rooms"`

	ContactPerson *ContactPerson `json:"contactPerson,omitempty"`
	VIPStatus     VIPStatus      `json:"vipStatus,omitempty"`
	BlockRate     float64        `json:"blockRate,omitempty"`

	BillingInstructions  string   `json:"billingInstructions,omitempty"`
	SpecialInstructions  string   `json:"specialInstructions,omitempty"`
	CateringRequirements string   `json:"cateringRequirements,omitempty"`
	Amenities            []string `json:"amenities,omitempty"`

	PaymentTerms    *PaymentTerms `json:"paymentTerms,omitempty"`
	CutOffDate      *time.Time    `json:"cutOffDate,omitempty"`
	AutoReleaseDate *time.Time    `json:"autoReleaseDate,omitempty"`
}

// UpdateBlockInput patches the descriptive fields of a block. Aggregate
// counters, room states and status are owned by the lifecycle service and
// deliberately absent here.
type UpdateBlockInput struct {
	BlockName *string    `json:"blockName,omitempty"`
	GroupName *string    `json:"groupName,omitempty"`
	EventType *EventType `json:"eventType,omitempty"`

	ContactPerson *ContactPerson `json:"contactPerson,omitempty"`
	VIPStatus     *VIPStatus     `json:"vipStatus,omitempty"`
	BlockRate     *float64       `json:"blockRate,omitempty"`

	BillingInstructions  *string  `json:"billingInstructions,omitempty"`
	SpecialInstructions  *string  `json:"specialInstructions,omitempty"`
	CateringRequirements *string  `json:"cateringRequirements,omitempty"`
	Amenities            []string `json:"amenities,omitempty"`

	PaymentTerms    *PaymentTerms `json:"paymentTerms,omitempty"`
	CutOffDate      *time.Time    `json:"cutOffDate,omitempty"`
	AutoReleaseDate *time.Time    `json:"autoReleaseDate,omitempty"`
}

// BookRoomInput carries the guest details attached when booking a room out
// of a block.
type BookRoomInput struct {
	GuestName       string `json:"guestName"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}
