// Package manifest reads uploaded CSV and Excel manifests. The first row is a
// header; columns are positional like the spreadsheets warehouse staff export.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"scanhelper/internal/domain"
)

// Guided manifest columns: C item code, D part number, E pieces.
const (
	colItemCode   = 2
	colPartNumber = 3
	colPieces     = 4
)

// Stock-take manifest columns: B part number, C quantity.
const (
	colStockPart     = 1
	colStockQuantity = 2
)

var partPrefix = regexp.MustCompile(`(?i)P/N\s*:?\s*`)

var ErrNoSheets = errors.New("manifest: workbook has no sheets")

type Loader struct{}

func New() *Loader { return &Loader{} }

func (l *Loader) LoadItems(fileName string, r io.Reader) ([]domain.Item, error) {
	rows, err := readRows(fileName, r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	colCompany := headerIndex(rows[0], "company")

	var items []domain.Item
	for _, row := range rows[1:] {
		code := cell(row, colItemCode)
		if code == "" {
			continue
		}
		it := domain.Item{
			ItemCode:      code,
			PartNumber:    CleanPartNumber(cell(row, colPartNumber)),
			ScansRequired: leadingInt(cell(row, colPieces)),
		}
		if colCompany >= 0 {
			it.Company = cell(row, colCompany)
		}
		if it.ScansRequired > 0 {
			items = append(items, it)
		}
	}
	return items, nil
}

func (l *Loader) LoadStockTake(fileName string, r io.Reader) ([]domain.StockTakeItem, error) {
	rows, err := readRows(fileName, r)
	if err != nil {
		return nil, err
	}
	var items []domain.StockTakeItem
	for i, row := range rows {
		if i == 0 {
			continue
		}
		it := domain.StockTakeItem{
			PartNumber: cell(row, colStockPart),
			Quantity:   leadingInt(cell(row, colStockQuantity)),
		}
		if it.PartNumber != "" && it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return items, nil
}

// CleanPartNumber strips the first "P/N:" style prefix and surrounding spaces.
func CleanPartNumber(s string) string {
	if loc := partPrefix.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}
	return strings.TrimSpace(s)
}

func readRows(fileName string, r io.Reader) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".csv") {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		cr.TrimLeadingSpace = true
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("manifest: read csv: %w", err)
		}
		return rows, nil
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: open workbook: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("manifest: read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// leadingInt reads the integer prefix of s ("12 pcs" is 12) and returns 0
// when there is none.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
