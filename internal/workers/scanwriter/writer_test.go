package scanwriter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
)

type flakyPersister struct {
	mu       sync.Mutex
	failures int
	calls    int
	saved    []domain.ScanRecord
}

func (p *flakyPersister) PersistScan(ctx context.Context, rec domain.ScanRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.failures > 0 {
		p.failures--
		return errors.New("backend unavailable")
	}
	p.saved = append(p.saved, rec)
	return nil
}

func (p *flakyPersister) snapshot() ([]domain.ScanRecord, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ScanRecord(nil), p.saved...), p.calls
}

func TestQueueRetriesUntilSaved(t *testing.T) {
	p := &flakyPersister{failures: 2}
	q := New(p, 4, 3)
	q.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	q.Run(ctx, 1)
	q.Enqueue(domain.ScanRecord{Session: "session_a", ItemCode: "IC-1", SerialNumber: "1"})

	require.Eventually(t, func() bool {
		saved, _ := p.snapshot()
		return len(saved) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	q.Wait()

	_, calls := p.snapshot()
	assert.Equal(t, 3, calls)
	dropped, failed := q.Stats()
	assert.Zero(t, dropped)
	assert.Zero(t, failed)
}

func TestQueueGivesUpAfterRetries(t *testing.T) {
	p := &flakyPersister{failures: 10}
	q := New(p, 4, 1)
	q.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	q.Run(ctx, 2)
	q.Enqueue(domain.ScanRecord{Session: "session_a", ItemCode: "IC-1", SerialNumber: "1"})

	require.Eventually(t, func() bool {
		_, failed := q.Stats()
		return failed == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	q.Wait()

	_, calls := p.snapshot()
	assert.Equal(t, 2, calls)
}

func TestEnqueueDropsWhenFull(t *testing.T) {
	q := New(&flakyPersister{}, 1, 0)
	q.Enqueue(domain.ScanRecord{SerialNumber: "1"})
	q.Enqueue(domain.ScanRecord{SerialNumber: "2"})

	dropped, _ := q.Stats()
	assert.Equal(t, 1, dropped)
}

func TestBufferedRecordsDrainOnShutdown(t *testing.T) {
	p := &flakyPersister{}
	q := New(p, 8, 0)
	for _, sn := range []string{"1", "2", "3"} {
		q.Enqueue(domain.ScanRecord{Session: "session_a", ItemCode: "IC-1", SerialNumber: sn})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Run(ctx, 1)
	q.Wait()

	saved, _ := p.snapshot()
	assert.Len(t, saved, 3)
}
