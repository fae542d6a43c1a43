package roomblock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	roomblockRepo "hotelops/database/repository/roomblock"
	"hotelops/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const statsCacheKey = "roomblock:stats"

// DefaultRoomBlockService is the production implementation.
type DefaultRoomBlockService struct {
	Repo        roomblockRepo.RoomBlockRepository
	Reg         *Registry
	Cache       *redis.Client // optional; stats caching is skipped when nil
	DefaultRate float64
	StatsTTL    time.Duration
	Logger      *zap.Logger
}

// NewDefaultRoomBlockService wires the service with its dependencies.
func NewDefaultRoomBlockService(
	repo roomblockRepo.RoomBlockRepository,
	cache *redis.Client,
	defaultRate float64,
	statsTTL time.Duration,
	logger *zap.Logger,
) (*DefaultRoomBlockService, error) {
	if repo == nil {
		return nil, fmt.Errorf("room block service initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultRoomBlockService{
		Repo:        repo,
		Reg:         NewRegistry(),
		Cache:       cache,
		DefaultRate: defaultRate,
		StatsTTL:    statsTTL,
		Logger:      logger,
	}, nil
}

// Registry exposes the in-memory block set for projection and reporting.
func (s *DefaultRoomBlockService) Registry() *Registry {
	return s.Reg
}

// GetBlock returns the block, preferring the registry and falling back to
// the repository (refilling the registry on a hit).
func (s *DefaultRoomBlockService) GetBlock(ctx context.Context, blockID string) (*models.RoomBlock, error) {
	if blockID == "" {
		return nil, NewValidationError("block id is required")
	}
	if block, ok := s.Reg.Get(blockID); ok {
		return block, nil
	}
	block, err := s.Repo.GetByID(ctx, blockID)
	if err != nil {
		return nil, s.repoError("fetch block "+blockID, err)
	}
	s.Reg.Upsert(block)
	return block, nil
}

// ListBlocks queries the repository and refreshes the registry with the page
// contents so projections read current data.
func (s *DefaultRoomBlockService) ListBlocks(ctx context.Context, filter models.BlockFilter) (*models.BlockPage, error) {
	page, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, s.repoError("list blocks", err)
	}
	for i := range page.Data {
		s.Reg.Upsert(&page.Data[i])
	}
	return page, nil
}

// Stats returns dashboard aggregates, served from the cache when fresh.
func (s *DefaultRoomBlockService) Stats(ctx context.Context) (*models.BlockStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats models.BlockStats
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, s.repoError("aggregate stats", err)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, raw, s.StatsTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache block stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// RefreshRegistry re-syncs the registry from the repository. Safe to call on
// a timer; upsert is idempotent so overlapping refreshes converge.
func (s *DefaultRoomBlockService) RefreshRegistry(ctx context.Context) error {
	blocks, err := s.Repo.ListAll(ctx)
	if err != nil {
		return s.repoError("refresh registry", err)
	}
	for i := range blocks {
		s.Reg.Upsert(&blocks[i])
	}
	return nil
}

// invalidateStats drops the cached stats after a mutating operation.
func (s *DefaultRoomBlockService) invalidateStats(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, statsCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}

// repoError maps repository failures onto the service error taxonomy.
func (s *DefaultRoomBlockService) repoError(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NewNotFoundError("%s: not found", op)
	}
	return NewRemoteError("failed to "+op, err)
}
