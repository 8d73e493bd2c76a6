// Package scanwriter delivers guided scans to storage in the background so a
// slow or failing backend never stalls the scanner.
package scanwriter

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
)

// Queue is a bounded buffer of scan records drained by a pool of workers.
type Queue struct {
	persister ports.ScanPersister
	records   chan domain.ScanRecord
	retries   uint64
	backoff   time.Duration

	wg      sync.WaitGroup
	mu      sync.Mutex
	dropped int
	failed  int
}

func New(persister ports.ScanPersister, size int, retries int) *Queue {
	if size < 1 {
		size = 1
	}
	if retries < 0 {
		retries = 0
	}
	return &Queue{
		persister: persister,
		records:   make(chan domain.ScanRecord, size),
		retries:   uint64(retries),
		backoff:   100 * time.Millisecond,
	}
}

// Enqueue hands a record to the workers. A full queue drops the record.
func (q *Queue) Enqueue(rec domain.ScanRecord) {
	select {
	case q.records <- rec:
	default:
		q.mu.Lock()
		q.dropped++
		q.mu.Unlock()
		log.Printf("scanwriter: queue full, dropped %s/%s", rec.ItemCode, rec.SerialNumber)
	}
}

// Run starts concurrency workers. They stop once ctx is done and whatever is
// already buffered has been written; Wait blocks until then.
func (q *Queue) Run(ctx context.Context, concurrency int) {
	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		q.wg.Add(1)
		go func(idx int) {
			defer q.wg.Done()
			// A write in flight finishes even if shutdown starts meanwhile.
			writeCtx := context.WithoutCancel(ctx)
			for {
				select {
				case rec := <-q.records:
					q.write(writeCtx, idx, rec)
				case <-ctx.Done():
					q.drain(idx)
					return
				}
			}
		}(i)
	}
}

func (q *Queue) Wait() { q.wg.Wait() }

// Stats reports how many records were dropped on a full queue and how many
// gave up after retries.
func (q *Queue) Stats() (dropped, failed int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped, q.failed
}

func (q *Queue) drain(idx int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case rec := <-q.records:
			q.write(ctx, idx, rec)
		default:
			return
		}
	}
}

func (q *Queue) write(ctx context.Context, idx int, rec domain.ScanRecord) {
	b := retry.WithMaxRetries(q.retries, retry.NewExponential(q.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := q.persister.PersistScan(ctx, rec); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		q.mu.Lock()
		q.failed++
		q.mu.Unlock()
		log.Printf("worker %d: scan %s/%s in %s not saved: %v", idx, rec.ItemCode, rec.SerialNumber, rec.Session, err)
	}
}
