package cron

import (
	"context"
	"time"

	"hotelops/config"
	"hotelops/services/roomblock"

	"go.uber.org/zap"
)

// StartRegistryRefresh re-syncs the in-memory registry from the database on
// a fixed cadence, matching the console's polling refresh. Upsert is
// idempotent, so a refresh racing a lifecycle write converges on the
// repository's state. Cancel ctx to stop the worker.
//
// No automatic room release happens here: cut-off and auto-release dates are
// informational until an external scheduler owns that behavior.
func StartRegistryRefresh(ctx context.Context, svc roomblock.RoomBlockService, logger *zap.Logger) {
	interval := time.Duration(config.AppConfig.RegistryRefreshSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Prime the registry before the first tick.
		if err := svc.RefreshRegistry(ctx); err != nil {
			logger.Warn("initial registry refresh failed", zap.Error(err))
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := svc.RefreshRegistry(ctx); err != nil {
					logger.Warn("registry refresh failed", zap.Error(err))
					continue
				}
				logger.Debug("registry refreshed", zap.Int("blocks", svc.Registry().Len()))
			}
		}
	}()
}
