package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"scanhelper/internal/domain"
)

func TestLoadItemsCSV(t *testing.T) {
	csv := strings.Join([]string{
		"No,Company,Item Code,Part Number,Pcs",
		"1,ACME,IC-100,P/N: 1138661 ,2",
		"2,ACME,IC-101,p/n1234567,0",
		"3,ACME,,7654321,4",
		"4,Globex,IC-102,7654321,3 pcs",
		"",
	}, "\n")

	items, err := New().LoadItems("order.CSV", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{
		{ItemCode: "IC-100", Company: "ACME", PartNumber: "1138661", ScansRequired: 2},
		{ItemCode: "IC-102", Company: "Globex", PartNumber: "7654321", ScansRequired: 3},
	}, items)
}

func TestLoadItemsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"No", "Desc", "Item Code", "Part", "Pcs"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "x", "IC-1", "P/N:1046315", 5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{2, "y", "IC-2", "1234567", "abc"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	items, err := New().LoadItems("order.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{ItemCode: "IC-1", PartNumber: "1046315", ScansRequired: 5}}, items)
}

func TestLoadItemsRejectsGarbageWorkbook(t *testing.T) {
	_, err := New().LoadItems("order.xlsx", strings.NewReader("not a zip"))
	assert.Error(t, err)
}

func TestLoadStockTakeCSV(t *testing.T) {
	csv := "No,Part,Qty\r\n1,\"1234567\",2\r\n2,7654321,0\r\n3,,5\r\n4, 1138661 ,1\r\n"
	items, err := New().LoadStockTake("count.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []domain.StockTakeItem{
		{PartNumber: "1234567", Quantity: 2},
		{PartNumber: "1138661", Quantity: 1},
	}, items)
}

func TestCleanPartNumber(t *testing.T) {
	assert.Equal(t, "1138661", CleanPartNumber("P/N: 1138661"))
	assert.Equal(t, "1138661", CleanPartNumber("  p/n  :1138661 "))
	assert.Equal(t, "1138661", CleanPartNumber("1138661"))
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 12, leadingInt("12"))
	assert.Equal(t, 3, leadingInt("3 pcs"))
	assert.Equal(t, 0, leadingInt("abc"))
	assert.Equal(t, 0, leadingInt(""))
	assert.Equal(t, -2, leadingInt("-2"))
}
