package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 12, 345e6, time.UTC) }
	return s
}

func TestCreateSessionStoresSource(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "order 1.xlsx", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "session_2024-05-01T09-30-12-345Z_order_1_xlsx", sess.Name)

	data, err := os.ReadFile(filepath.Join(s.scansDir, sess.Name, "source_file.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	src, err := s.LatestSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFile{Name: "latest_data.xlsx", Data: []byte("payload")}, src)
}

func TestLatestSourceFollowsNewestUpload(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.LatestSource(ctx)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	_, err = s.CreateSession(ctx, "order.csv", strings.NewReader("Item Code,Part Number"))
	require.NoError(t, err)
	_, err = s.CreateSession(ctx, "order.xlsx", strings.NewReader("xlsx bytes"))
	require.NoError(t, err)

	src, err := s.LatestSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, "latest_data.xlsx", src.Name)
	assert.Equal(t, "xlsx bytes", string(src.Data))

	left, err := filepath.Glob(filepath.Join(s.sharedDir, "latest_data*"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(s.sharedDir, "latest_data.xlsx")}, left)
}

func TestPersistScanAppendsPerItem(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	sess, err := s.CreateSession(ctx, "order.csv", nil)
	require.NoError(t, err)

	for _, sn := range []string{"23400015", "23400016"} {
		require.NoError(t, s.PersistScan(ctx, domain.ScanRecord{Session: sess.Name, ItemCode: "IC/100", SerialNumber: sn}))
	}

	files, err := s.SessionFiles(ctx, sess.Name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{{Name: "IC_100.txt", Lines: []string{"23400015", "23400016"}}}, files)
}

func TestPersistScanKeepsCollidingItemsApart(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	sess, err := s.CreateSession(ctx, "order.csv", nil)
	require.NoError(t, err)

	for _, rec := range []domain.ScanRecord{
		{Session: sess.Name, ItemCode: "AB-1234", SerialNumber: "S1"},
		{Session: sess.Name, ItemCode: "AB_1234", SerialNumber: "S2"},
		{Session: sess.Name, ItemCode: "AB-1234", SerialNumber: "S3"},
	} {
		require.NoError(t, s.PersistScan(ctx, rec))
	}

	files, err := s.SessionFiles(ctx, sess.Name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{
		{Name: "AB_1234.txt", Lines: []string{"S1", "S3"}},
		{Name: "AB_1234_2.txt", Lines: []string{"S2"}},
	}, files)
}

func TestPersistScanRejectsBadSession(t *testing.T) {
	s := newStore(t)
	err := s.PersistScan(context.Background(), domain.ScanRecord{Session: "../etc", ItemCode: "A", SerialNumber: "1"})
	assert.ErrorIs(t, err, ports.ErrInvalidName)
}

func TestExportSerials(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	name := "session_2024-05-01T09-30-12-345Z_serial_extractor"

	err := s.ExportSerials(ctx, name, map[string][]string{
		"7654321": {"B1"},
		"1138661": {"A1", " ", "A2"},
		"empty":   nil,
	})
	require.NoError(t, err)

	files, err := s.SessionFiles(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{
		{Name: "1138661.txt", Lines: []string{"A1", "A2"}},
		{Name: "7654321.txt", Lines: []string{"B1"}},
		{Name: "extracted_serial_numbers.txt", Lines: []string{"[1138661]", "A1", "A2", "[7654321]", "B1"}},
	}, files)
}

func TestExportSerialsKeepsCollidingPartsApart(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	name := "session_2024-05-01T09-30-12-345Z_serial_extractor"

	require.NoError(t, s.ExportSerials(ctx, name, map[string][]string{
		"AB-1234": {"S1", "S2"},
		"AB_1234": {"S3"},
	}))

	files, err := s.SessionFiles(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{
		{Name: "AB_1234.txt", Lines: []string{"S1", "S2"}},
		{Name: "AB_1234_2.txt", Lines: []string{"S3"}},
		{Name: "extracted_serial_numbers.txt", Lines: []string{"[AB-1234]", "S1", "S2", "[AB_1234]", "S3"}},
	}, files)
}

func TestExportSerialsNothingToWrite(t *testing.T) {
	s := newStore(t)
	err := s.ExportSerials(context.Background(), "session_x", map[string][]string{"A": {" "}})
	assert.ErrorIs(t, err, ports.ErrNoSerials)
}

func TestListSessions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	sess, err := s.CreateSession(ctx, "a.csv", nil)
	require.NoError(t, err)
	require.NoError(t, s.PersistScan(ctx, domain.ScanRecord{Session: sess.Name, ItemCode: "X", SerialNumber: "1"}))
	require.NoError(t, os.MkdirAll(filepath.Join(s.scansDir, "not_a_session"), 0o755))

	list, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sess.Name, list[0].Name)
	assert.Equal(t, 1, list[0].FileCount)
}

func TestSessionFilesValidation(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.SessionFiles(ctx, "other")
	assert.ErrorIs(t, err, ports.ErrInvalidName)
	_, err = s.SessionFiles(ctx, "session_..")
	assert.ErrorIs(t, err, ports.ErrInvalidName)
	_, err = s.SessionFiles(ctx, "session_missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStockTakeSnapshotRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	name, err := s.SaveStockTake(ctx, []domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 3, Scanned: 1},
		{PartNumber: "7654321", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "stock_take_2024-05-01T09-30-12-345Z.txt", name)

	list, err := s.ListStockTakes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, name, list[0].Name)

	items, err := s.LoadStockTake(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 3, Scanned: 1},
		{PartNumber: "7654321", Quantity: 2},
	}, items)

	_, err = s.LoadStockTake(ctx, "../x.txt")
	assert.ErrorIs(t, err, ports.ErrInvalidName)
	_, err = s.LoadStockTake(ctx, "missing.txt")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestParseStockTakeLine(t *testing.T) {
	assert.Equal(t, domain.StockTakeItem{PartNumber: "A", Quantity: 4, Scanned: 2}, ParseStockTakeLine("A, 4 ,2"))
	assert.Equal(t, domain.StockTakeItem{PartNumber: "A"}, ParseStockTakeLine("A"))
}
