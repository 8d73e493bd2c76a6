// Package stocktake counts scanned units against expected quantities per part
// number. Fulfilled parts leave the working list.
package stocktake

import (
	"errors"
	"slices"
	"sync"

	"scanhelper/internal/domain"
	"scanhelper/internal/services/classifier"
)

type Result struct {
	PartNumber string `json:"partNumber"`
	Scanned    int    `json:"scanned"`
	Quantity   int    `json:"quantity"`
	Fulfilled  bool   `json:"fulfilled"`
}

var ErrIndexOutOfRange = errors.New("stocktake: index out of range")

type Tracker struct {
	mu    sync.Mutex
	items []domain.StockTakeItem
}

// New keeps items with a positive quantity that are not already fulfilled,
// preserving order. Use it for fresh manifests and for restored snapshots.
func New(items []domain.StockTakeItem) *Tracker {
	working := make([]domain.StockTakeItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 || it.Scanned < 0 || it.Fulfilled() {
			continue
		}
		working = append(working, it)
	}
	return &Tracker{items: working}
}

// Scan counts one unit of the first working entry with the scanned part
// number. A part that was fulfilled earlier is reported as not found.
func (t *Tracker) Scan(raw string) (Result, error) {
	code, err := classifier.Classify(raw)
	if err != nil || code.PartNumber == "" {
		return Result{}, domain.NewScanError(domain.KindNotFound, domain.ReasonUnreadable, raw)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.items, func(it domain.StockTakeItem) bool { return it.PartNumber == code.PartNumber })
	if i < 0 {
		return Result{}, domain.NewScanError(domain.KindNotFound, domain.ReasonNotInList, raw)
	}
	it := &t.items[i]
	if it.Fulfilled() {
		return Result{}, domain.NewScanError(domain.KindOverScan, domain.ReasonFulfilled, raw)
	}

	it.Scanned++
	res := Result{PartNumber: it.PartNumber, Scanned: it.Scanned, Quantity: it.Quantity, Fulfilled: it.Fulfilled()}
	if res.Fulfilled {
		t.items = slices.Delete(t.items, i, i+1)
	}
	return res, nil
}

// Remove drops the working entry at index regardless of its count.
func (t *Tracker) Remove(index int) (domain.StockTakeItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.items) {
		return domain.StockTakeItem{}, ErrIndexOutOfRange
	}
	removed := t.items[index]
	t.items = slices.Delete(t.items, index, index+1)
	return removed, nil
}

func (t *Tracker) Items() []domain.StockTakeItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.items)
}
