package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Purger interface {
	PurgeExpired(ctx context.Context, before time.Time, batch int) (int64, error)
}

const purgeBatch = 500

// StartBlacklistCleanup purges blacklist entries that expired more than
// retention ago, once at start and then every interval, until ctx is done.
func StartBlacklistCleanup(ctx context.Context, p Purger, retention, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	log = log.Named("blacklist-cleanup")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			RunOnce(ctx, p, time.Now().Add(-retention), log)
			select {
			case <-ctx.Done():
				log.Info("stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// RunOnce deletes batches until nothing older than before remains.
func RunOnce(ctx context.Context, p Purger, before time.Time, log *zap.Logger) int64 {
	var total int64
	for ctx.Err() == nil {
		n, err := p.PurgeExpired(ctx, before, purgeBatch)
		if err != nil {
			log.Error("purge failed", zap.Error(err))
			break
		}
		total += n
		if n < purgeBatch {
			break
		}
	}
	if total > 0 {
		log.Info("purged expired tokens", zap.Int64("count", total))
	}
	return total
}
