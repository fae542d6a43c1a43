package roomblock

import (
	"context"

	"hotelops/models"
)

// RoomBlockService orchestrates the room block lifecycle against the
// repository, keeping the in-memory registry consistent with confirmed
// writes. Every mutating operation is atomic with respect to the registry:
// on any failure the registry is exactly as it was before the call.
type RoomBlockService interface {
	// Lifecycle.
	CreateBlock(ctx context.Context, input models.CreateBlockInput) (*models.RoomBlock, error)
	UpdateBlock(ctx context.Context, blockID string, patch models.UpdateBlockInput) (*models.RoomBlock, error)
	DeleteBlock(ctx context.Context, blockID string) error
	BookRoom(ctx context.Context, blockID, roomID string, input models.BookRoomInput) (*models.RoomBlock, error)
	CheckInRoom(ctx context.Context, blockID, roomID string) (*models.RoomBlock, error)
	ReleaseRoom(ctx context.Context, blockID, roomID, reason string) (*models.RoomBlock, error)
	CancelBlock(ctx context.Context, blockID, reason string) (*models.RoomBlock, error)
	AddNote(ctx context.Context, blockID, content string, author models.NoteAuthor, isInternal bool) (*models.RoomBlock, error)

	// Reads.
	GetBlock(ctx context.Context, blockID string) (*models.RoomBlock, error)
	ListBlocks(ctx context.Context, filter models.BlockFilter) (*models.BlockPage, error)
	Stats(ctx context.Context) (*models.BlockStats, error)

	// Registry access for projection and reporting, plus the idempotent
	// re-sync used by the refresh worker.
	Registry() *Registry
	RefreshRegistry(ctx context.Context) error
}
