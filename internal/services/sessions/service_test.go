package sessions

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
	"scanhelper/internal/services/guided"
)

type fakeLoader struct {
	items []domain.Item
	stock []domain.StockTakeItem
	err   error
}

func (f fakeLoader) LoadItems(string, io.Reader) ([]domain.Item, error) { return f.items, f.err }

func (f fakeLoader) LoadStockTake(string, io.Reader) ([]domain.StockTakeItem, error) {
	return f.stock, f.err
}

type fakeStore struct {
	mu        sync.Mutex
	created   []string
	sources   []string
	snapshots map[string][]domain.StockTakeItem
}

func (f *fakeStore) CreateSession(ctx context.Context, sourceName string, source io.Reader) (domain.Session, error) {
	data, _ := io.ReadAll(source)
	f.mu.Lock()
	defer f.mu.Unlock()
	name := "session_" + domain.SafeName(sourceName)
	f.created = append(f.created, name)
	f.sources = append(f.sources, string(data))
	return domain.Session{Name: name, SourceName: sourceName}, nil
}

func (f *fakeStore) LatestSource(context.Context) (domain.SourceFile, error) {
	return domain.SourceFile{}, errors.New("no upload")
}

func (f *fakeStore) ListSessions(context.Context) ([]domain.SessionSummary, error) { return nil, nil }

func (f *fakeStore) SessionFiles(context.Context, string) ([]domain.SessionFile, error) {
	return nil, nil
}

func (f *fakeStore) SaveStockTake(ctx context.Context, items []domain.StockTakeItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snapshots == nil {
		f.snapshots = map[string][]domain.StockTakeItem{}
	}
	f.snapshots["snap.txt"] = items
	return "snap.txt", nil
}

func (f *fakeStore) ListStockTakes(context.Context) ([]domain.SnapshotInfo, error) { return nil, nil }

func (f *fakeStore) LoadStockTake(ctx context.Context, name string) ([]domain.StockTakeItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.snapshots[name]
	if !ok {
		return nil, errors.New("missing")
	}
	return items, nil
}

type sink struct {
	mu   sync.Mutex
	recs []domain.ScanRecord
}

func (s *sink) Enqueue(rec domain.ScanRecord) {
	s.mu.Lock()
	s.recs = append(s.recs, rec)
	s.mu.Unlock()
}

var manifestItems = []domain.Item{
	{ItemCode: "IC-1", PartNumber: "1138661", ScansRequired: 1},
	{ItemCode: "IC-2", PartNumber: "1234567", ScansRequired: 1},
}

func TestStartGuidedCreatesSessionAndShares(t *testing.T) {
	store := &fakeStore{}
	out := &sink{}
	svc := New(fakeLoader{items: manifestItems}, fakeLoader{}, store, store, out)

	id, tr, err := svc.StartGuided(context.Background(), "order.csv", strings.NewReader("raw bytes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"session_order_csv"}, store.created)
	assert.Equal(t, []string{"raw bytes"}, store.sources)

	got, err := svc.Guided(id)
	require.NoError(t, err)
	assert.Same(t, tr, got)

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, manifestItems, latest.Items)
	assert.Equal(t, "order.csv", latest.OriginalName)

	sharedID, shared, err := svc.JoinShared()
	require.NoError(t, err)
	assert.NotEqual(t, id, sharedID)
	assert.Equal(t, tr.Session(), shared.Session())

	_, err = shared.Scan("1138661")
	require.NoError(t, err)
	assert.Equal(t, 0, tr.State().Index, "trackers keep separate progress")
	require.Len(t, out.recs, 1)
	assert.Equal(t, "session_order_csv", out.recs[0].Session)
}

func TestStartGuidedErrors(t *testing.T) {
	store := &fakeStore{}
	ctx := context.Background()

	svc := New(fakeLoader{err: errors.New("boom")}, fakeLoader{}, store, store, nil)
	_, _, err := svc.StartGuided(ctx, "x.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrBadManifest)

	svc = New(fakeLoader{}, fakeLoader{}, store, store, nil)
	_, _, err = svc.StartGuided(ctx, "x.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, guided.ErrEmptyManifest)
	assert.Empty(t, store.created)

	_, _, err = svc.JoinShared()
	assert.ErrorIs(t, err, ErrNoSharedManifest)
}

func TestLookupAndClose(t *testing.T) {
	store := &fakeStore{}
	svc := New(fakeLoader{}, fakeLoader{}, store, store, nil)

	id, _ := svc.StartExtraction()
	_, err := svc.Extraction(id)
	require.NoError(t, err)

	_, err = svc.Guided(id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.StockTake(id)
	assert.ErrorIs(t, err, ErrNotFound)

	svc.Close(id)
	_, err = svc.Extraction(id)
	assert.ErrorIs(t, err, ErrNotFound)
	svc.Close("unknown")
}

func TestStockTakeSaveAndRestore(t *testing.T) {
	store := &fakeStore{}
	stock := []domain.StockTakeItem{
		{PartNumber: "1138661", Quantity: 2},
		{PartNumber: "1234567", Quantity: 1},
	}
	svc := New(fakeLoader{}, fakeLoader{stock: stock}, store, store, nil)
	ctx := context.Background()

	id, tr, err := svc.StartStockTake("count.csv", strings.NewReader(""))
	require.NoError(t, err)
	_, err = tr.Scan("1138661")
	require.NoError(t, err)

	name, err := svc.SaveStockTake(ctx, id)
	require.NoError(t, err)

	_, restored, err := svc.RestoreStockTake(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.StockTakeItem{
		{PartNumber: "1138661", Quantity: 2, Scanned: 1},
		{PartNumber: "1234567", Quantity: 1},
	}, restored.Items())

	_, err = svc.SaveStockTake(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
