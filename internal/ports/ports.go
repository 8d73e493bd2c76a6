package ports

import (
	"io"

	"scanhelper/internal/domain"
)

// ManifestLoader turns an uploaded guided manifest into ordered items with
// ScansRequired > 0 and cleaned part numbers.
type ManifestLoader interface {
	LoadItems(fileName string, r io.Reader) ([]domain.Item, error)
}

// StockTakeLoader turns an uploaded stock-take manifest into items with
// Quantity > 0.
type StockTakeLoader interface {
	LoadStockTake(fileName string, r io.Reader) ([]domain.StockTakeItem, error)
}

// ScanSink accepts a guided-mode scan for delivery. Enqueue must not block the
// caller and never reports failure back.
type ScanSink interface {
	Enqueue(rec domain.ScanRecord)
}
