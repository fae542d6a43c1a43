package models

import "time"

// BlockStatus is the aggregate status of a room block. It is derived by the
// lifecycle service from the room states and never set directly by callers.
type BlockStatus string

const (
	BlockStatusActive            BlockStatus = "active"
	BlockStatusCompleted         BlockStatus = "completed"
	BlockStatusCancelled         BlockStatus = "cancelled"
	BlockStatusPartiallyReleased BlockStatus = "partially_released"
)

// RoomStatus is the per-room state within a block.
type RoomStatus string

const (
	RoomStatusBlocked  RoomStatus = "blocked"
	RoomStatusReserved RoomStatus = "reserved"
	RoomStatusOccupied RoomStatus = "occupied"
	RoomStatusReleased RoomStatus = "released"
)

// EventType classifies the group or event a block is held for.
type EventType string

const (
	EventTypeConference     EventType = "conference"
	EventTypeWedding        EventType = "wedding"
	EventTypeCorporateEvent EventType = "corporate_event"
	EventTypeGroupBooking   EventType = "group_booking"
	EventTypeConvention     EventType = "convention"
	EventTypeOther          EventType = "other"
)

// VIPStatus affects rendering priority only.
type VIPStatus string

const (
	VIPStatusStandard  VIPStatus = "standard"
	VIPStatusVIP       VIPStatus = "vip"
	VIPStatusCorporate VIPStatus = "corporate"
)

// ValidEventTypes lists every accepted event type.
var ValidEventTypes = []EventType{
	EventTypeConference,
	EventTypeWedding,
	EventTypeCorporateEvent,
	EventTypeGroupBooking,
	EventTypeConvention,
	EventTypeOther,
}

// ContactPerson is the point of contact for a block. Plain data, no invariants.
type ContactPerson struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
}

// PaymentTerms carries billing terms agreed for the block.
type PaymentTerms struct {
	DepositPercentage  float64 `bson:"deposit_percentage" json:"depositPercentage"`
	CancellationPolicy string  `bson:"cancellation_policy" json:"cancellationPolicy"`
}

// BlockRoom is one physical room's membership and status within a room block.
type BlockRoom struct {
	RoomID          string     `bson:"room_id" json:"roomId"`
	RoomNumber      string     `bson:"room_number" json:"roomNumber"`
	RoomType        string     `bson:"room_type" json:"roomType"`
	Status          RoomStatus `bson:"status" json:"status"`
	GuestName       string     `bson:"guest_name,omitempty" json:"guestName,omitempty"`             // set once booked
	SpecialRequests string     `bson:"special_requests,omitempty" json:"specialRequests,omitempty"` // set once booked
	Rate            float64    `bson:"rate,omitempty" json:"rate,omitempty"`                        // optional per-night override, 0 = unset
}

// RoomBlock is a reserved allocation of rooms against a date range for a
// group or event, independent of individual guest reservations.
type RoomBlock struct {
	ID        string    `bson:"id" json:"id"`
	BlockName string    `bson:"block_name" json:"blockName"`
	GroupName string    `bson:"group_name" json:"groupName"`
	EventType EventType `bson:"event_type" json:"eventType"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"`

	Rooms []BlockRoom `bson:"rooms" json:"rooms"`

	// Aggregate counters, kept consistent with the room states by the
	// lifecycle service. AvailableRooms = TotalRooms - RoomsBooked - RoomsReleased.
	TotalRooms     int `bson:"total_rooms" json:"totalRooms"`
	RoomsBooked    int `bson:"rooms_booked" json:"roomsBooked"`
	RoomsReleased  int `bson:"rooms_released" json:"roomsReleased"`
	AvailableRooms int `bson:"available_rooms" json:"availableRooms"`

	Status BlockStatus `bson:"status" json:"status"`

	ContactPerson *ContactPerson `bson:"contact_person,omitempty" json:"contactPerson,omitempty"`
	VIPStatus     VIPStatus      `bson:"vip_status,omitempty" json:"vipStatus,omitempty"`

	// Fallback per-night rate when individual rooms carry none. 0 = unset.
	BlockRate float64 `bson:"block_rate,omitempty" json:"blockRate,omitempty"`

	BillingInstructions  string   `bson:"billing_instructions,omitempty" json:"billingInstructions,omitempty"`
	SpecialInstructions  string   `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	CateringRequirements string   `bson:"catering_requirements,omitempty" json:"cateringRequirements,omitempty"`
	Amenities            []string `bson:"amenities,omitempty" json:"amenities,omitempty"`

	// Append-only audit trail. Notes are never edited or removed.
	Notes []Note `bson:"notes,omitempty" json:"notes,omitempty"`

	PaymentTerms *PaymentTerms `bson:"payment_terms,omitempty" json:"paymentTerms,omitempty"`

	// Informational dates. No automatic release is triggered by the service;
	// an external scheduler owns that behavior if it exists at all.
	CutOffDate      *time.Time `bson:"cut_off_date,omitempty" json:"cutOffDate,omitempty"`
	AutoReleaseDate *time.Time `bson:"auto_release_date,omitempty" json:"autoReleaseDate,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FindRoom returns the room matching either identity field. Upstream data
// sources are inconsistent about which of RoomID/RoomNumber they populate,
// so both are deliberately accepted as lookup keys.
func (b *RoomBlock) FindRoom(key string) *BlockRoom {
	for i := range b.Rooms {
		if b.Rooms[i].RoomID == key || b.Rooms[i].RoomNumber == key {
			return &b.Rooms[i]
		}
	}
	return nil
}

// HasRoom reports whether the block holds a room matching either the given
// room id or room number.
func (b *RoomBlock) HasRoom(roomID, roomNumber string) bool {
	for i := range b.Rooms {
		if (roomID != "" && b.Rooms[i].RoomID == roomID) ||
			(roomNumber != "" && b.Rooms[i].RoomNumber == roomNumber) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the block. Lifecycle operations mutate a
// clone and publish it only once the repository confirms the write.
func (b *RoomBlock) Clone() *RoomBlock {
	cp := *b
	cp.Rooms = make([]BlockRoom, len(b.Rooms))
	copy(cp.Rooms, b.Rooms)
	if len(b.Notes) > 0 {
		cp.Notes = make([]Note, len(b.Notes))
		copy(cp.Notes, b.Notes)
	}
	if len(b.Amenities) > 0 {
		cp.Amenities = make([]string, len(b.Amenities))
		copy(cp.Amenities, b.Amenities)
	}
	if b.ContactPerson != nil {
		contact := *b.ContactPerson
		cp.ContactPerson = &contact
	}
	if b.PaymentTerms != nil {
		terms := *b.PaymentTerms
		cp.PaymentTerms = &terms
	}
	if b.CutOffDate != nil {
		d := *b.CutOffDate
		cp.CutOffDate = &d
	}
	if b.AutoReleaseDate != nil {
		d := *b.AutoReleaseDate
		cp.AutoReleaseDate = &d
	}
	return &cp
}
