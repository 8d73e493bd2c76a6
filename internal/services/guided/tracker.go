// Package guided walks an ordered manifest, accepting scans only for the
// expected part until each item's required count is met.
package guided

import (
	"errors"
	"slices"
	"sync"
	"time"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/classifier"
)

type Outcome string

const (
	OutcomeAccepted Outcome = "scan_accepted"
	OutcomeAdvanced Outcome = "item_advanced"
	OutcomeComplete Outcome = "session_complete"
	// OutcomeIgnored is a matching scan for an item that needs no more scans.
	OutcomeIgnored Outcome = "ignored"
)

type Result struct {
	Outcome        Outcome `json:"outcome"`
	ItemIndex      int     `json:"itemIndex"`
	ItemCode       string  `json:"itemCode"`
	SerialNumber   string  `json:"serialNumber,omitempty"`
	ScansRemaining int     `json:"scansRemaining"`
	CurrentIndex   int     `json:"currentIndex"`
}

type State struct {
	Session  string              `json:"session"`
	Index    int                 `json:"index"`
	Total    int                 `json:"total"`
	Item     domain.Item         `json:"item"`
	Progress domain.ItemProgress `json:"progress"`
	Complete bool                `json:"complete"`
	CanBack  bool                `json:"canBack"`
	CanSkip  bool                `json:"canSkip"`
}

var ErrEmptyManifest = errors.New("guided: manifest has no items")

// Tracker owns the progress of one manifest. Every method is safe for
// concurrent use; devices sharing a tracker are serialised on its mutex.
type Tracker struct {
	mu       sync.Mutex
	session  string
	items    []domain.Item
	progress []domain.ItemProgress
	index    int
	sink     ports.ScanSink
	now      func() time.Time
}

func New(session string, items []domain.Item, sink ports.ScanSink) (*Tracker, error) {
	if len(items) == 0 {
		return nil, ErrEmptyManifest
	}
	progress := make([]domain.ItemProgress, len(items))
	for i, it := range items {
		progress[i] = domain.ItemProgress{ScansRemaining: max(it.ScansRequired, 0), SerialNumbers: []string{}}
	}
	return &Tracker{
		session:  session,
		items:    slices.Clone(items),
		progress: progress,
		sink:     sink,
		now:      time.Now,
	}, nil
}

func (t *Tracker) Session() string { return t.session }

// Scan validates raw against the current item and records it when it matches.
// Rejections are *domain.ScanError values and leave all progress untouched.
func (t *Tracker) Scan(raw string) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	code, err := classifier.Classify(raw)
	if err != nil || !code.Complete() {
		return Result{}, domain.NewScanError(domain.KindMismatch, domain.ReasonUnreadable, raw)
	}

	idx := t.index
	item := t.items[idx]
	if code.PartNumber != item.PartNumber {
		return Result{}, domain.NewScanError(domain.KindMismatch, domain.ReasonWrongPart, raw)
	}

	p := &t.progress[idx]
	res := Result{ItemIndex: idx, ItemCode: item.ItemCode, CurrentIndex: idx}
	if p.ScansRemaining == 0 {
		res.Outcome = OutcomeIgnored
		return res, nil
	}

	p.SerialNumbers = append(p.SerialNumbers, code.SerialNumber)
	p.ScansRemaining--
	if t.sink != nil {
		t.sink.Enqueue(domain.ScanRecord{
			Session:      t.session,
			ItemCode:     item.ItemCode,
			SerialNumber: code.SerialNumber,
			ScannedAt:    t.now(),
		})
	}

	res.SerialNumber = code.SerialNumber
	res.ScansRemaining = p.ScansRemaining
	switch {
	case p.ScansRemaining > 0:
		res.Outcome = OutcomeAccepted
	case idx == len(t.items)-1:
		res.Outcome = OutcomeComplete
	default:
		t.index++
		res.Outcome = OutcomeAdvanced
	}
	res.CurrentIndex = t.index
	return res, nil
}

// Back moves to the previous item. Progress is never modified.
func (t *Tracker) Back() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index > 0 {
		t.index--
	}
	return t.stateLocked()
}

// Skip moves to the next item. Progress is never modified.
func (t *Tracker) Skip() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index < len(t.items)-1 {
		t.index++
	}
	return t.stateLocked()
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Tracker) stateLocked() State {
	return State{
		Session:  t.session,
		Index:    t.index,
		Total:    len(t.items),
		Item:     t.items[t.index],
		Progress: cloneProgress(t.progress[t.index]),
		Complete: t.completeLocked(),
		CanBack:  t.index > 0,
		CanSkip:  t.index < len(t.items)-1,
	}
}

// completeLocked holds once every item is done, and while the pointer rests
// on a finished last item. Navigation never clears it on its own.
func (t *Tracker) completeLocked() bool {
	last := len(t.items) - 1
	if t.index == last && t.progress[last].ScansRemaining == 0 {
		return true
	}
	for _, p := range t.progress {
		if p.ScansRemaining > 0 {
			return false
		}
	}
	return true
}

// Items returns the manifest in scan order.
func (t *Tracker) Items() []domain.Item {
	return slices.Clone(t.items)
}

// Progress returns a copy of every item's progress, indexed like Items.
func (t *Tracker) Progress() []domain.ItemProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.ItemProgress, len(t.progress))
	for i, p := range t.progress {
		out[i] = cloneProgress(p)
	}
	return out
}

func cloneProgress(p domain.ItemProgress) domain.ItemProgress {
	return domain.ItemProgress{ScansRemaining: p.ScansRemaining, SerialNumbers: slices.Clone(p.SerialNumbers)}
}
