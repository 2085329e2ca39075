package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
)

// KeyCacheSweeper periodically evicts expired derived keys.
type KeyCacheSweeper struct {
	cache    Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewKeyCacheSweeper(cache Sweeper, interval time.Duration, logger *logger.Logger) *KeyCacheSweeper {
	return &KeyCacheSweeper{cache: cache, interval: interval, logger: logger}
}

// Run starts the sweep loop. A non-positive interval disables it.
func (s *KeyCacheSweeper) Run(ctx context.Context) {
	if s.interval <= 0 || s.cache == nil {
		s.logger.Debug().Str("func", "KeyCacheSweeper.Run").Msg("key cache sweeper disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Debug().Str("func", "KeyCacheSweeper.Run").Msg("key cache sweeper stopped")
				return
			case <-ticker.C:
				if n := s.cache.Sweep(); n > 0 {
					s.logger.Debug().
						Str("func", "KeyCacheSweeper.Run").
						Int("evicted", n).
						Msg("expired keys evicted")
				}
			}
		}
	}()
}
