// Package extraction collects serial numbers by part number from free-form
// scans, with no expected item list.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"sync"
	"time"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/classifier"
)

type Result struct {
	PartNumber   string `json:"partNumber"`
	SerialNumber string `json:"serialNumber,omitempty"`
	// Added is false when the serial was already in the part's bucket.
	Added bool `json:"added"`
	// NoSerial marks a scan that only bumped the part's no-serial counter.
	NoSerial bool `json:"noSerial"`
	Count    int  `json:"count"`
}

type PartView struct {
	PartNumber string   `json:"partNumber"`
	Serials    []string `json:"serials"`
}

type NoSerialView struct {
	PartNumber string `json:"partNumber"`
	Count      int    `json:"count"`
}

type View struct {
	Parts     []PartView     `json:"parts"`
	NoSerial  []NoSerialView `json:"noSerial"`
	CanExport bool           `json:"canExport"`
}

type ExportResult struct {
	SessionName  string `json:"sessionName"`
	Parts        int    `json:"parts"`
	TotalSerials int    `json:"totalSerials"`
}

var ErrNothingToExport = errors.New("extraction: no serial numbers to export")

type Tracker struct {
	mu       sync.Mutex
	serials  map[string][]string
	noSerial map[string]int
	now      func() time.Time
}

func New() *Tracker {
	return &Tracker{
		serials:  map[string][]string{},
		noSerial: map[string]int{},
		now:      time.Now,
	}
}

func (t *Tracker) Scan(raw string) (Result, error) {
	code, err := classifier.Classify(raw)
	if err != nil || code.PartNumber == "" {
		return Result{}, domain.NewScanError(domain.KindClassification, domain.ReasonUnreadable, raw)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !code.HasSeparateSerial {
		t.noSerial[code.PartNumber]++
		return Result{PartNumber: code.PartNumber, NoSerial: true, Count: t.noSerial[code.PartNumber]}, nil
	}
	if code.SerialNumber == "" {
		return Result{}, domain.NewScanError(domain.KindClassification, domain.ReasonMissingSerial, raw)
	}

	res := Result{PartNumber: code.PartNumber, SerialNumber: code.SerialNumber}
	bucket := t.serials[code.PartNumber]
	if !slices.Contains(bucket, code.SerialNumber) {
		bucket = append(bucket, code.SerialNumber)
		t.serials[code.PartNumber] = bucket
		res.Added = true
	}
	res.Count = len(bucket)
	return res, nil
}

// RemoveSerial drops one serial; the bucket goes away when it empties.
func (t *Tracker) RemoveSerial(part, serial string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	bucket := t.serials[part]
	i := slices.Index(bucket, serial)
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(t.serials, part)
	} else {
		t.serials[part] = bucket
	}
	return true
}

func (t *Tracker) RemovePart(part string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.serials[part]
	delete(t.serials, part)
	return ok
}

func (t *Tracker) RemoveNoSerial(part string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.noSerial[part]
	delete(t.noSerial, part)
	return ok
}

func (t *Tracker) Serials(part string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.serials[part])
}

// View lists parts sorted by part number. A part with serials is not repeated
// in the no-serial list.
func (t *Tracker) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := View{Parts: []PartView{}, NoSerial: []NoSerialView{}}
	for _, part := range slices.Sorted(maps.Keys(t.serials)) {
		v.Parts = append(v.Parts, PartView{PartNumber: part, Serials: slices.Clone(t.serials[part])})
	}
	for _, part := range slices.Sorted(maps.Keys(t.noSerial)) {
		if _, ok := t.serials[part]; ok {
			continue
		}
		v.NoSerial = append(v.NoSerial, NoSerialView{PartNumber: part, Count: t.noSerial[part]})
	}
	v.CanExport = len(t.serials) > 0
	return v
}

// DefaultSessionName names an export by its start time.
func (t *Tracker) DefaultSessionName() string {
	return fmt.Sprintf("session_%s_serial_extractor", domain.Stamp(t.now()))
}

// Export hands every part with serials to the exporter and clears the tracker
// on success. Parts that only carry a no-serial count are not exported. The
// exporter is never called with an empty mapping.
func (t *Tracker) Export(ctx context.Context, exporter ports.SerialExporter, sessionName string) (ExportResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.serials) == 0 {
		return ExportResult{}, ErrNothingToExport
	}
	if sessionName == "" {
		sessionName = t.DefaultSessionName()
	}

	payload := make(map[string][]string, len(t.serials))
	total := 0
	for part, serials := range t.serials {
		payload[part] = slices.Clone(serials)
		total += len(serials)
	}
	if err := exporter.ExportSerials(ctx, sessionName, payload); err != nil {
		log.Printf("extraction: export %s failed: %v", sessionName, err)
		return ExportResult{}, fmt.Errorf("export serials: %w", err)
	}

	t.serials = map[string][]string{}
	t.noSerial = map[string]int{}
	return ExportResult{SessionName: sessionName, Parts: len(payload), TotalSerials: total}, nil
}
