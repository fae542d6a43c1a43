package roomblock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelops/models"
	"hotelops/services/timeline"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// systemAuthor stamps the automatic notes written by release and cancel
// operations.
var systemAuthor = models.NoteAuthor{ID: "system", Name: "System"}

// CreateBlock validates the input, persists a new block with every room in
// blocked state, and loads it into the registry.
func (s *DefaultRoomBlockService) CreateBlock(ctx context.Context, input models.CreateBlockInput) (*models.RoomBlock, error) {
	normalizeDates(&input)
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rooms := make([]models.BlockRoom, len(input.Rooms))
	for i, r := range input.Rooms {
		rooms[i] = models.BlockRoom{
			RoomID:     r.RoomID,
			RoomNumber: r.RoomNumber,
			RoomType:   r.RoomType,
			Status:     models.RoomStatusBlocked,
			Rate:       r.Rate,
		}
	}

	block := &models.RoomBlock{
		ID:                   uuid.New().String(),
		BlockName:            input.BlockName,
		GroupName:            input.GroupName,
		EventType:            input.EventType,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		Rooms:                rooms,
		ContactPerson:        input.ContactPerson,
		VIPStatus:            input.VIPStatus,
		BlockRate:            input.BlockRate,
		BillingInstructions:  input.BillingInstructions,
		SpecialInstructions:  input.SpecialInstructions,
		CateringRequirements: input.CateringRequirements,
		Amenities:            input.Amenities,
		PaymentTerms:         input.PaymentTerms,
		CutOffDate:           input.CutOffDate,
		AutoReleaseDate:      input.AutoReleaseDate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	recompute(block)

	if err := s.Repo.Create(ctx, block); err != nil {
		return nil, s.repoError("create block", err)
	}
	s.Reg.Upsert(block)
	s.invalidateStats(ctx)
	s.Logger.Info("room block created",
		zap.String("blockId", block.ID),
		zap.String("blockName", block.BlockName),
		zap.Int("totalRooms", block.TotalRooms))
	return block, nil
}

// UpdateBlock patches descriptive fields. Counters, room states and status
// cannot be touched through this path.
func (s *DefaultRoomBlockService) UpdateBlock(ctx context.Context, blockID string, patch models.UpdateBlockInput) (*models.RoomBlock, error) {
	block, err := s.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if patch.EventType != nil && !validEventType(*patch.EventType) {
		return nil, NewValidationError("unknown event type %q", *patch.EventType)
	}

	updated := block.Clone()
	applyPatch(updated, patch)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, blockID, updated); err != nil {
		return nil, s.repoError("update block "+blockID, err)
	}
	s.Reg.Upsert(updated)
	s.invalidateStats(ctx)
	return updated, nil
}

// DeleteBlock removes the block entirely (whole-block release). The registry
// entry is dropped only after the repository confirms.
func (s *DefaultRoomBlockService) DeleteBlock(ctx context.Context, blockID string) error {
	if blockID == "" {
		return NewValidationError("block id is required")
	}
	if err := s.Repo.Delete(ctx, blockID); err != nil {
		return s.repoError("delete block "+blockID, err)
	}
	s.Reg.Remove(blockID)
	s.invalidateStats(ctx)
	s.Logger.Info("room block deleted", zap.String("blockId", blockID))
	return nil
}

// BookRoom transitions a blocked room to reserved and records the guest.
func (s *DefaultRoomBlockService) BookRoom(ctx context.Context, blockID, roomID string, input models.BookRoomInput) (*models.RoomBlock, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, NewValidationError("guest name is required to book a room")
	}
	return s.mutateRoom(ctx, blockID, roomID, "book room", func(block *models.RoomBlock, room *models.BlockRoom) error {
		return bookRoom(block, room, input)
	})
}

// CheckInRoom transitions a reserved room to occupied.
func (s *DefaultRoomBlockService) CheckInRoom(ctx context.Context, blockID, roomID string) (*models.RoomBlock, error) {
	return s.mutateRoom(ctx, blockID, roomID, "check in room", func(block *models.RoomBlock, room *models.BlockRoom) error {
		return checkInRoom(block, room)
	})
}

// ReleaseRoom frees a room back to general inventory. When the last room is
// released this way the block completes; it is not marked cancelled.
func (s *DefaultRoomBlockService) ReleaseRoom(ctx context.Context, blockID, roomID, reason string) (*models.RoomBlock, error) {
	return s.mutateRoom(ctx, blockID, roomID, "release room", func(block *models.RoomBlock, room *models.BlockRoom) error {
		if err := releaseRoom(room); err != nil {
			return err
		}
		if strings.TrimSpace(reason) != "" {
			appendNote(block, fmt.Sprintf("Room %s released: %s", roomKey(room), reason), systemAuthor, true)
		}
		return nil
	})
}

// CancelBlock forces every room to released and marks the block cancelled,
// recording the reason as an automatic note. Blocks already in a terminal
// state (cancelled or completed) are rejected.
func (s *DefaultRoomBlockService) CancelBlock(ctx context.Context, blockID, reason string) (*models.RoomBlock, error) {
	block, err := s.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if block.Status == models.BlockStatusCancelled || block.Status == models.BlockStatusCompleted {
		return nil, NewInvalidStateError("block %s is already %s and cannot be cancelled", blockID, block.Status)
	}

	updated := block.Clone()
	for i := range updated.Rooms {
		updated.Rooms[i].Status = models.RoomStatusReleased
	}
	updated.Status = models.BlockStatusCancelled
	recompute(updated)
	appendNote(updated, "Block cancelled: "+strings.TrimSpace(reason), systemAuthor, true)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, blockID, updated); err != nil {
		return nil, s.repoError("cancel block "+blockID, err)
	}
	s.Reg.Upsert(updated)
	s.invalidateStats(ctx)
	s.Logger.Info("room block cancelled",
		zap.String("blockId", blockID),
		zap.String("reason", reason))
	return updated, nil
}

// AddNote appends to the block's audit trail. Notes are append-only; nothing
// else on the block changes.
func (s *DefaultRoomBlockService) AddNote(ctx context.Context, blockID, content string, author models.NoteAuthor, isInternal bool) (*models.RoomBlock, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("note content must not be empty")
	}
	block, err := s.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}

	updated := block.Clone()
	appendNote(updated, content, author, isInternal)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, blockID, updated); err != nil {
		return nil, s.repoError("add note to block "+blockID, err)
	}
	s.Reg.Upsert(updated)
	return updated, nil
}

// mutateRoom loads the block, applies a room transition to a clone, persists
// it, and publishes the confirmed result. Any failure leaves the registry
// untouched.
func (s *DefaultRoomBlockService) mutateRoom(
	ctx context.Context,
	blockID, roomID, op string,
	transition func(*models.RoomBlock, *models.BlockRoom) error,
) (*models.RoomBlock, error) {
	if roomID == "" {
		return nil, NewValidationError("room id is required")
	}
	block, err := s.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}

	updated := block.Clone()
	room := updated.FindRoom(roomID)
	if room == nil {
		return nil, NewNotFoundError("room %s not found in block %s", roomID, blockID)
	}
	if err := transition(updated, room); err != nil {
		return nil, err
	}
	recompute(updated)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, blockID, updated); err != nil {
		return nil, s.repoError(op+" in block "+blockID, err)
	}
	s.Reg.Upsert(updated)
	s.invalidateStats(ctx)
	s.Logger.Info("room state changed",
		zap.String("op", op),
		zap.String("blockId", blockID),
		zap.String("roomId", roomID),
		zap.String("status", string(room.Status)))
	return updated, nil
}

func appendNote(block *models.RoomBlock, content string, author models.NoteAuthor, isInternal bool) {
	block.Notes = append(block.Notes, models.Note{
		ID:         uuid.New().String(),
		Content:    content,
		CreatedBy:  author,
		CreatedAt:  time.Now().UTC(),
		IsInternal: isInternal,
	})
}

// normalizeDates truncates every block date to UTC midnight. Clients routinely
// send full timestamps; stored blocks carry day granularity only so the
// timeline fractions stay well formed.
func normalizeDates(input *models.CreateBlockInput) {
	input.StartDate = timeline.TruncateToDay(input.StartDate)
	input.EndDate = timeline.TruncateToDay(input.EndDate)
	if input.CutOffDate != nil {
		d := timeline.TruncateToDay(*input.CutOffDate)
		input.CutOffDate = &d
	}
	if input.AutoReleaseDate != nil {
		d := timeline.TruncateToDay(*input.AutoReleaseDate)
		input.AutoReleaseDate = &d
	}
}

func validateCreateInput(input models.CreateBlockInput) error {
	if strings.TrimSpace(input.BlockName) == "" {
		return NewValidationError("block name is required")
	}
	if !validEventType(input.EventType) {
		return NewValidationError("unknown event type %q", input.EventType)
	}
	if !input.StartDate.Before(input.EndDate) {
		return NewValidationError("start date %s must be before end date %s",
			input.StartDate.Format("2006-01-02"), input.EndDate.Format("2006-01-02"))
	}
	if len(input.Rooms) == 0 {
		return NewValidationError("a block needs at least one room")
	}
	seen := make(map[string]struct{}, len(input.Rooms))
	for _, r := range input.Rooms {
		key := r.RoomID
		if key == "" {
			key = r.RoomNumber
		}
		if key == "" {
			return NewValidationError("every room needs a room id or room number")
		}
		if _, dup := seen[key]; dup {
			return NewValidationError("duplicate room %s in block", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func validEventType(et models.EventType) bool {
	for _, v := range models.ValidEventTypes {
		if et == v {
			return true
		}
	}
	return false
}

func applyPatch(block *models.RoomBlock, patch models.UpdateBlockInput) {
	if patch.BlockName != nil {
		block.BlockName = *patch.BlockName
	}
	if patch.GroupName != nil {
		block.GroupName = *patch.GroupName
	}
	if patch.EventType != nil {
		block.EventType = *patch.EventType
	}
	if patch.ContactPerson != nil {
		block.ContactPerson = patch.ContactPerson
	}
	if patch.VIPStatus != nil {
		block.VIPStatus = *patch.VIPStatus
	}
	if patch.BlockRate != nil {
		block.BlockRate = *patch.BlockRate
	}
	if patch.BillingInstructions != nil {
		block.BillingInstructions = *patch.BillingInstructions
	}
	if patch.SpecialInstructions != nil {
		block.SpecialInstructions = *patch.SpecialInstructions
	}
	if patch.CateringRequirements != nil {
		block.CateringRequirements = *patch.CateringRequirements
	}
	if patch.Amenities != nil {
		block.Amenities = patch.Amenities
	}
	if patch.PaymentTerms != nil {
		block.PaymentTerms = patch.PaymentTerms
	}
	if patch.CutOffDate != nil {
		d := timeline.TruncateToDay(*patch.CutOffDate)
		block.CutOffDate = &d
	}
	if patch.AutoReleaseDate != nil {
		d := timeline.TruncateToDay(*patch.AutoReleaseDate)
		block.AutoReleaseDate = &d
	}
}
