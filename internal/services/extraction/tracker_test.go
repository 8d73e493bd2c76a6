package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
)

type fakeExporter struct {
	calls []map[string][]string
	names []string
	err   error
}

func (f *fakeExporter) ExportSerials(_ context.Context, name string, serials map[string][]string) error {
	f.calls = append(f.calls, serials)
	f.names = append(f.names, name)
	return f.err
}

func TestScanDeduplicatesSerials(t *testing.T) {
	tr := New()

	res, err := tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, 1, res.Count)

	res, err = tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Equal(t, 1, res.Count)

	assert.Equal(t, []string{"23400015"}, tr.Serials("1138661"))
}

func TestScanWithoutSeparateSerialCounts(t *testing.T) {
	tr := New()
	for range 3 {
		res, err := tr.Scan("http://pid.sick.com/1234567")
		require.NoError(t, err)
		assert.True(t, res.NoSerial)
	}
	v := tr.View()
	assert.Empty(t, v.Parts)
	require.Len(t, v.NoSerial, 1)
	assert.Equal(t, NoSerialView{PartNumber: "1234567", Count: 3}, v.NoSerial[0])
	assert.False(t, v.CanExport)
}

func TestScanRejects(t *testing.T) {
	tr := New()

	_, err := tr.Scan("abc")
	assert.ErrorIs(t, err, domain.ErrClassification)

	_, err = tr.Scan("0000000000000000pid.sick.com/")
	assert.ErrorIs(t, err, domain.ErrClassification)
}

func TestViewSortsAndHidesDuplicateNoSerialParts(t *testing.T) {
	tr := New()
	mustScan(t, tr, "104631522440725")
	mustScan(t, tr, "pid.sick.com/1138661/23400015")
	mustScan(t, tr, "1046315")
	mustScan(t, tr, "7777777")

	v := tr.View()
	require.Len(t, v.Parts, 2)
	assert.Equal(t, "1046315", v.Parts[0].PartNumber)
	assert.Equal(t, "1138661", v.Parts[1].PartNumber)
	require.Len(t, v.NoSerial, 1)
	assert.Equal(t, "7777777", v.NoSerial[0].PartNumber)
	assert.True(t, v.CanExport)
}

func TestRemovals(t *testing.T) {
	tr := New()
	mustScan(t, tr, "pid.sick.com/1138661/23400015")
	mustScan(t, tr, "pid.sick.com/1138661/23400016")
	mustScan(t, tr, "1234567")

	assert.True(t, tr.RemoveSerial("1138661", "23400015"))
	assert.False(t, tr.RemoveSerial("1138661", "23400015"))
	assert.Equal(t, []string{"23400016"}, tr.Serials("1138661"))

	assert.True(t, tr.RemoveSerial("1138661", "23400016"))
	assert.Empty(t, tr.View().Parts)

	mustScan(t, tr, "104631522440725")
	assert.True(t, tr.RemovePart("1046315"))
	assert.False(t, tr.RemovePart("1046315"))

	assert.True(t, tr.RemoveNoSerial("1234567"))
	assert.Empty(t, tr.View().NoSerial)
}

func TestExportClearsOnSuccess(t *testing.T) {
	tr := New()
	tr.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 12, 345e6, time.UTC) }
	mustScan(t, tr, "pid.sick.com/1138661/23400015")
	mustScan(t, tr, "104631522440725")
	mustScan(t, tr, "7777777")

	exp := &fakeExporter{}
	res, err := tr.Export(context.Background(), exp, "")
	require.NoError(t, err)
	assert.Equal(t, "session_2024-05-01T09-30-12-345Z_serial_extractor", res.SessionName)
	assert.Equal(t, 2, res.Parts)
	assert.Equal(t, 2, res.TotalSerials)

	require.Len(t, exp.calls, 1)
	assert.Equal(t, map[string][]string{
		"1138661": {"23400015"},
		"1046315": {"22440725"},
	}, exp.calls[0])

	v := tr.View()
	assert.Empty(t, v.Parts)
	assert.Empty(t, v.NoSerial)
}

func TestExportNothing(t *testing.T) {
	tr := New()
	mustScan(t, tr, "7777777")
	exp := &fakeExporter{}

	_, err := tr.Export(context.Background(), exp, "x")
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Empty(t, exp.calls)
}

func TestExportFailureKeepsState(t *testing.T) {
	tr := New()
	mustScan(t, tr, "pid.sick.com/1138661/23400015")
	boom := errors.New("disk full")

	_, err := tr.Export(context.Background(), &fakeExporter{err: boom}, "session_x")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"23400015"}, tr.Serials("1138661"))
}

func mustScan(t *testing.T, tr *Tracker, code string) {
	t.Helper()
	_, err := tr.Scan(code)
	require.NoError(t, err)
}
