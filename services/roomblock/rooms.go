package roomblock

import "hotelops/models"

// Room state machine: blocked → reserved → occupied, with released reachable
// from any non-released state. Transitions run against a cloned block and
// are published only after the repository confirms the write.

// bookRoom moves a blocked room to reserved and attaches the guest details.
func bookRoom(block *models.RoomBlock, room *models.BlockRoom, input models.BookRoomInput) error {
	if block.Status == models.BlockStatusCancelled {
		return NewInvalidStateError("cannot book room %s: block %s is cancelled", roomKey(room), block.ID)
	}
	if room.Status != models.RoomStatusBlocked {
		return NewInvalidStateError("cannot book room %s: status is %s, expected %s",
			roomKey(room), room.Status, models.RoomStatusBlocked)
	}
	room.Status = models.RoomStatusReserved
	room.GuestName = input.GuestName
	room.SpecialRequests = input.SpecialRequests
	return nil
}

// checkInRoom moves a reserved room to occupied. Aggregate counters are
// unaffected; occupied rooms still count as booked.
func checkInRoom(block *models.RoomBlock, room *models.BlockRoom) error {
	if block.Status == models.BlockStatusCancelled {
		return NewInvalidStateError("cannot check in room %s: block %s is cancelled", roomKey(room), block.ID)
	}
	if room.Status != models.RoomStatusReserved {
		return NewInvalidStateError("cannot check in room %s: status is %s, expected %s",
			roomKey(room), room.Status, models.RoomStatusReserved)
	}
	room.Status = models.RoomStatusOccupied
	return nil
}

// releaseRoom frees any non-released room back to general inventory.
func releaseRoom(room *models.BlockRoom) error {
	if room.Status == models.RoomStatusReleased {
		return NewInvalidStateError("cannot release room %s: already released", roomKey(room))
	}
	room.Status = models.RoomStatusReleased
	return nil
}

// recompute rebuilds the aggregate counters from the room states and derives
// the block status. Status is never taken from the caller; deriving it here
// after every mutation keeps counters and status from ever disagreeing.
func recompute(block *models.RoomBlock) {
	booked, released := 0, 0
	for i := range block.Rooms {
		switch block.Rooms[i].Status {
		case models.RoomStatusReserved, models.RoomStatusOccupied:
			booked++
		case models.RoomStatusReleased:
			released++
		}
	}
	block.TotalRooms = len(block.Rooms)
	block.RoomsBooked = booked
	block.RoomsReleased = released
	block.AvailableRooms = block.TotalRooms - booked - released

	// Cancelled is terminal. A block whose rooms were all released one by
	// one has wound down normally and completes; this is deliberately
	// distinct from an explicit cancellation.
	if block.Status == models.BlockStatusCancelled {
		return
	}
	switch {
	case block.TotalRooms > 0 && released == block.TotalRooms:
		block.Status = models.BlockStatusCompleted
	case released > 0:
		block.Status = models.BlockStatusPartiallyReleased
	default:
		block.Status = models.BlockStatusActive
	}
}

func roomKey(room *models.BlockRoom) string {
	if room.RoomID != "" {
		return room.RoomID
	}
	return room.RoomNumber
}
