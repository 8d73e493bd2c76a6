package stocktake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanhelper/internal/domain"
)

func TestFulfilledItemLeavesWorkingList(t *testing.T) {
	tr := New([]domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 1},
		{PartNumber: "1138661", Quantity: 2},
	})

	res, err := tr.Scan("1234567")
	require.NoError(t, err)
	assert.True(t, res.Fulfilled)
	assert.Len(t, tr.Items(), 1)

	_, err = tr.Scan("1234567")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, &domain.ScanError{Kind: domain.KindNotFound, Reason: domain.ReasonNotInList})
}

func TestScanIgnoresSerialAndCounts(t *testing.T) {
	tr := New([]domain.StockTakeItem{{PartNumber: "1138661", Quantity: 3}})

	res, err := tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Scanned)
	res, err = tr.Scan("pid.sick.com/1138661/23400015")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Scanned)
	assert.False(t, res.Fulfilled)

	assert.Equal(t, []domain.StockTakeItem{{PartNumber: "1138661", Quantity: 3, Scanned: 2}}, tr.Items())
}

func TestScanUnreadableIsNotFound(t *testing.T) {
	tr := New([]domain.StockTakeItem{{PartNumber: "1234567", Quantity: 1}})
	_, err := tr.Scan("??")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, tr.Items(), 1)
}

func TestFirstMatchingEntryWins(t *testing.T) {
	tr := New([]domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 1},
		{PartNumber: "1234567", Quantity: 5},
	})
	_, err := tr.Scan("1234567")
	require.NoError(t, err)

	items := tr.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 0, items[0].Scanned)
}

func TestNewDropsInvalidAndFulfilledRows(t *testing.T) {
	tr := New([]domain.StockTakeItem{
		{PartNumber: "A", Quantity: 0},
		{PartNumber: "B", Quantity: 2, Scanned: 2},
		{PartNumber: "C", Quantity: 2, Scanned: 1},
	})
	assert.Equal(t, []domain.StockTakeItem{{PartNumber: "C", Quantity: 2, Scanned: 1}}, tr.Items())
}

func TestRemove(t *testing.T) {
	tr := New([]domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 1},
		{PartNumber: "7654321", Quantity: 1},
	})
	removed, err := tr.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "1234567", removed.PartNumber)

	_, err = tr.Remove(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = tr.Scan("1234567")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
