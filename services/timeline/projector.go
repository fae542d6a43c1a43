package timeline

import (
	"fmt"

	"hotelops/models"
)

// Project selects the blocks holding the given room and clips each against
// the viewport. Blocks that do not touch the viewport are dropped. Segments
// come back in the order the blocks were supplied; callers that want stable
// stacking should pass blocks in creation order and assign z-index from
// position.
func Project(room models.Room, viewport models.Viewport, blocks []models.RoomBlock) ([]models.TimelineOverlaySegment, error) {
	if !viewport.Start.Before(viewport.End) {
		return nil, fmt.Errorf("invalid viewport range: start %s is not before end %s",
			viewport.Start.Format("2006-01-02"), viewport.End.Format("2006-01-02"))
	}

	segments := []models.TimelineOverlaySegment{}
	for i := range blocks {
		block := &blocks[i]
		if !block.HasRoom(room.ID, room.Number) {
			continue
		}
		if !block.StartDate.Before(block.EndDate) {
			// Malformed block ranges are rejected at creation; skip rather
			// than fail the whole projection if one slips through.
			continue
		}
		overlap, ok, err := ComputeOverlap(block.StartDate, block.EndDate, viewport.Start, viewport.End)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		roomID := room.ID
		if roomID == "" {
			roomID = room.Number
		}
		segments = append(segments, models.TimelineOverlaySegment{
			BlockID:        block.ID,
			RoomID:         roomID,
			OffsetFraction: overlap.OffsetFraction,
			WidthFraction:  overlap.WidthFraction,
			IsPartial:      overlap.IsPartial,
			EffectiveStart: overlap.EffectiveStart,
			EffectiveEnd:   overlap.EffectiveEnd,
		})
	}
	return segments, nil
}
