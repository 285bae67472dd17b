package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePurger struct {
	remaining int64
	calls     atomic.Int32
	err       error
}

func (f *fakePurger) PurgeExpired(_ context.Context, _ time.Time, batch int) (int64, error) {
	f.calls.Add(1)
	if f.err != nil {
		return 0, f.err
	}
	n := int64(batch)
	if f.remaining < n {
		n = f.remaining
	}
	f.remaining -= n
	return n, nil
}

func TestRunOnceDrainsInBatches(t *testing.T) {
	p := &fakePurger{remaining: 1200}
	n := RunOnce(context.Background(), p, time.Now(), zap.NewNop())
	assert.EqualValues(t, 1200, n)
	assert.EqualValues(t, 3, p.calls.Load())
}

func TestRunOnceStopsOnError(t *testing.T) {
	p := &fakePurger{err: errors.New("db down")}
	n := RunOnce(context.Background(), p, time.Now(), zap.NewNop())
	assert.Zero(t, n)
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestStartBlacklistCleanupStopsWithContext(t *testing.T) {
	p := &fakePurger{}
	ctx, cancel := context.WithCancel(context.Background())
	StartBlacklistCleanup(ctx, p, time.Hour, 10*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}
