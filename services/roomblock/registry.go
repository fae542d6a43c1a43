package roomblock

import (
	"sort"
	"strings"
	"sync"

	"hotelops/models"
)

// Registry is the in-memory view of all loaded room blocks, keyed by block
// id. It mirrors the repository and is only mutated on confirmed writes. A
// block leaves the registry solely through Remove after the repository has
// confirmed deletion.
type Registry struct {
	mu     sync.RWMutex
	blocks map[string]*models.RoomBlock
	order  map[string]int // insertion sequence, used as the sort tie breaker
	next   int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blocks: make(map[string]*models.RoomBlock),
		order:  make(map[string]int),
	}
}

// Upsert inserts or wholly replaces a block by id. No field merging happens;
// the supplied block becomes the version every reader sees. Re-upserting an
// identical block is a no-op in observable terms.
func (r *Registry) Upsert(block *models.RoomBlock) {
	if block == nil || block.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.order[block.ID]; !exists {
		r.order[block.ID] = r.next
		r.next++
	}
	r.blocks[block.ID] = block.Clone()
}

// Get returns a copy of the block with the given id.
func (r *Registry) Get(blockID string) (*models.RoomBlock, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	block, ok := r.blocks[blockID]
	if !ok {
		return nil, false
	}
	return block.Clone(), true
}

// Remove drops a block. Only called once the repository has confirmed the
// deletion; the registry never drops a block speculatively.
func (r *Registry) Remove(blockID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blocks, blockID)
	delete(r.order, blockID)
}

// Len returns the number of loaded blocks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blocks)
}

// List returns copies of all blocks in insertion order.
func (r *Registry) List() []models.RoomBlock {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.RoomBlock, 0, len(r.blocks))
	for _, block := range r.blocks {
		out = append(out, *block.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.order[out[i].ID] < r.order[out[j].ID]
	})
	return out
}

// Filter returns copies of the blocks matching the filter, sorted by start
// date ascending (descending when requested) with insertion order breaking
// ties. Search text matches case-insensitively against block name, group
// name and contact name.
func (r *Registry) Filter(filter models.BlockFilter) []models.RoomBlock {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.RoomBlock, 0, len(r.blocks))
	for _, block := range r.blocks {
		if filter.Status != "" && block.Status != filter.Status {
			continue
		}
		if filter.EventType != "" && block.EventType != filter.EventType {
			continue
		}
		if search != "" && !matchesSearch(block, search) {
			continue
		}
		out = append(out, *block.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.StartDate.Equal(b.StartDate) {
			if filter.Descending {
				return a.StartDate.After(b.StartDate)
			}
			return a.StartDate.Before(b.StartDate)
		}
		return r.order[a.ID] < r.order[b.ID]
	})
	return out
}

func matchesSearch(block *models.RoomBlock, search string) bool {
	if strings.Contains(strings.ToLower(block.BlockName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(block.GroupName), search) {
		return true
	}
	if block.ContactPerson != nil &&
		strings.Contains(strings.ToLower(block.ContactPerson.Name), search) {
		return true
	}
	return false
}
