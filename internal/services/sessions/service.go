// Package sessions owns the live trackers of the running process, keyed by an
// opaque id handed to devices.
package sessions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/extraction"
	"scanhelper/internal/services/guided"
	"scanhelper/internal/services/stocktake"
)

var ErrNotFound = errString("session not found")
var ErrNoSharedManifest = errString("no manifest has been uploaded yet")
var ErrBadManifest = errString("manifest could not be read")

type errString string

func (e errString) Error() string { return string(e) }

// Manifest is the latest guided upload, kept so other devices can join it.
type Manifest struct {
	Items        []domain.Item
	Session      string
	OriginalName string
	UploadedAt   time.Time
}

type Service struct {
	manifests  ports.ManifestLoader
	stockTakes ports.StockTakeLoader
	store      ports.SessionStore
	snapshots  ports.StockTakeStore
	sink       ports.ScanSink

	mu         sync.RWMutex
	guided     map[string]*guided.Tracker
	extraction map[string]*extraction.Tracker
	stocktake  map[string]*stocktake.Tracker
	latest     *Manifest
	now        func() time.Time
}

func New(manifests ports.ManifestLoader, stockTakes ports.StockTakeLoader, store ports.SessionStore, snapshots ports.StockTakeStore, sink ports.ScanSink) *Service {
	return &Service{
		manifests:  manifests,
		stockTakes: stockTakes,
		store:      store,
		snapshots:  snapshots,
		sink:       sink,
		guided:     map[string]*guided.Tracker{},
		extraction: map[string]*extraction.Tracker{},
		stocktake:  map[string]*stocktake.Tracker{},
		now:        time.Now,
	}
}

// StartGuided loads a manifest upload, opens a storage session for it and
// returns the id of a fresh tracker. The upload becomes the shared manifest.
func (s *Service) StartGuided(ctx context.Context, fileName string, r io.Reader) (string, *guided.Tracker, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	items, err := s.manifests.LoadItems(fileName, bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	if len(items) == 0 {
		return "", nil, guided.ErrEmptyManifest
	}
	sess, err := s.store.CreateSession(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	tr, err := guided.New(sess.Name, items, s.sink)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.guided[id] = tr
	s.latest = &Manifest{Items: items, Session: sess.Name, OriginalName: fileName, UploadedAt: s.now()}
	s.mu.Unlock()
	log.Printf("sessions: guided %s started on %s (%d items)", id, sess.Name, len(items))
	return id, tr, nil
}

func (s *Service) Latest() (Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Manifest{}, ErrNoSharedManifest
	}
	m := *s.latest
	m.Items = slices.Clone(m.Items)
	return m, nil
}

// JoinShared starts a tracker with its own progress on the latest manifest.
// Its scans are recorded into the same storage session.
func (s *Service) JoinShared() (string, *guided.Tracker, error) {
	m, err := s.Latest()
	if err != nil {
		return "", nil, err
	}
	tr, err := guided.New(m.Session, m.Items, s.sink)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.guided[id] = tr
	s.mu.Unlock()
	return id, tr, nil
}

func (s *Service) Guided(id string) (*guided.Tracker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tr, ok := s.guided[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tr, nil
}

func (s *Service) StartExtraction() (string, *extraction.Tracker) {
	tr := extraction.New()
	id := uuid.NewString()
	s.mu.Lock()
	s.extraction[id] = tr
	s.mu.Unlock()
	return id, tr
}

func (s *Service) Extraction(id string) (*extraction.Tracker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tr, ok := s.extraction[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tr, nil
}

func (s *Service) StartStockTake(fileName string, r io.Reader) (string, *stocktake.Tracker, error) {
	items, err := s.stockTakes.LoadStockTake(fileName, r)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	tr := stocktake.New(items)
	return s.addStockTake(tr), tr, nil
}

// RestoreStockTake starts a tracker from a saved snapshot.
func (s *Service) RestoreStockTake(ctx context.Context, name string) (string, *stocktake.Tracker, error) {
	items, err := s.snapshots.LoadStockTake(ctx, name)
	if err != nil {
		return "", nil, err
	}
	tr := stocktake.New(items)
	return s.addStockTake(tr), tr, nil
}

func (s *Service) SaveStockTake(ctx context.Context, id string) (string, error) {
	tr, err := s.StockTake(id)
	if err != nil {
		return "", err
	}
	return s.snapshots.SaveStockTake(ctx, tr.Items())
}

func (s *Service) StockTake(id string) (*stocktake.Tracker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tr, ok := s.stocktake[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tr, nil
}

func (s *Service) addStockTake(tr *stocktake.Tracker) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.stocktake[id] = tr
	s.mu.Unlock()
	return id
}

// Close forgets a tracker of any mode. Unknown ids are ignored.
func (s *Service) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guided, id)
	delete(s.extraction, id)
	delete(s.stocktake, id)
}
