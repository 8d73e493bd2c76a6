package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
)

// openTestDB connects to TEST_DATABASE_URL and skips when it is unset.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE session_lines, sessions, stock_takes`)
	require.NoError(t, err)

	stamp := time.Date(2024, 5, 1, 9, 30, 12, 345e6, time.UTC)
	db.now = func() time.Time { return stamp }
	return db
}

func TestSortedPartsSkipsBlank(t *testing.T) {
	got := sortedParts(map[string][]string{"b": nil, " ": nil, "a": nil})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestValidationWithoutDatabase(t *testing.T) {
	db := &DB{now: time.Now}
	ctx := context.Background()

	assert.ErrorIs(t, db.PersistScan(ctx, domain.ScanRecord{Session: "../x", ItemCode: "A", SerialNumber: "1"}), ports.ErrInvalidName)
	assert.ErrorIs(t, db.ExportSerials(ctx, "nope", nil), ports.ErrInvalidName)
	assert.ErrorIs(t, db.ExportSerials(ctx, "session_a", map[string][]string{"A": {" "}}), ports.ErrNoSerials)
	_, err := db.SessionFiles(ctx, "session_..")
	assert.ErrorIs(t, err, ports.ErrInvalidName)
	_, err = db.LoadStockTake(ctx, "../x")
	assert.ErrorIs(t, err, ports.ErrInvalidName)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sess, err := db.CreateSession(ctx, "order.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, "session_2024-05-01T09-30-12-345Z_order_csv", sess.Name)

	for _, sn := range []string{"1", "2"} {
		require.NoError(t, db.PersistScan(ctx, domain.ScanRecord{Session: sess.Name, ItemCode: "IC-1", SerialNumber: sn}))
	}
	files, err := db.SessionFiles(ctx, sess.Name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{{Name: "IC_1.txt", Lines: []string{"1", "2"}}}, files)

	list, err := db.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].FileCount)

	_, err = db.SessionFiles(ctx, "session_missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestExportReplacesFiles(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	name := "session_2024-05-01T09-30-12-345Z_serial_extractor"

	require.NoError(t, db.ExportSerials(ctx, name, map[string][]string{"B": {"1"}}))
	require.NoError(t, db.ExportSerials(ctx, name, map[string][]string{"B": {"2", "3"}, "A": {"9"}}))

	files, err := db.SessionFiles(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{
		{Name: "A.txt", Lines: []string{"9"}},
		{Name: "B.txt", Lines: []string{"2", "3"}},
		{Name: "extracted_serial_numbers.txt", Lines: []string{"[A]", "9", "[B]", "2", "3"}},
	}, files)
}

func TestCollidingNamesGetOwnFiles(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sess, err := db.CreateSession(ctx, "order.csv", nil)
	require.NoError(t, err)
	for _, rec := range []domain.ScanRecord{
		{Session: sess.Name, ItemCode: "AB-1234", SerialNumber: "S1"},
		{Session: sess.Name, ItemCode: "AB_1234", SerialNumber: "S2"},
		{Session: sess.Name, ItemCode: "AB-1234", SerialNumber: "S3"},
	} {
		require.NoError(t, db.PersistScan(ctx, rec))
	}
	files, err := db.SessionFiles(ctx, sess.Name)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionFile{
		{Name: "AB_1234.txt", Lines: []string{"S1", "S3"}},
		{Name: "AB_1234_2.txt", Lines: []string{"S2"}},
	}, files)

	name := "session_2024-05-01T09-30-12-345Z_serial_extractor"
	require.NoError(t, db.ExportSerials(ctx, name, map[string][]string{"AB-1234": {"E1"}, "AB_1234": {"E2"}}))
	files, err = db.SessionFiles(ctx, name)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "AB_1234.txt", files[0].Name)
	assert.Equal(t, "AB_1234_2.txt", files[1].Name)
}

func TestLatestSource(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.LatestSource(ctx)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	_, err = db.CreateSession(ctx, "order.csv", strings.NewReader("csv bytes"))
	require.NoError(t, err)
	later := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return later }
	_, err = db.CreateSession(ctx, "order.xlsx", strings.NewReader("xlsx bytes"))
	require.NoError(t, err)

	src, err := db.LatestSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFile{Name: "latest_data.xlsx", Data: []byte("xlsx bytes")}, src)
}

func TestStockTakeSnapshots(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	name, err := db.SaveStockTake(ctx, []domain.StockTakeItem{{PartNumber: "1234567", Quantity: 2, Scanned: 1}})
	require.NoError(t, err)

	list, err := db.ListStockTakes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, name, list[0].Name)

	items, err := db.LoadStockTake(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []domain.StockTakeItem{{PartNumber: "1234567", Quantity: 2, Scanned: 1}}, items)

	_, err = db.LoadStockTake(ctx, "stock_take_missing.txt")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
