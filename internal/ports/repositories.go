package ports

import (
	"context"
	"io"

	"scanhelper/internal/domain"
)

// Errors every storage backend reports with the same meaning.
var (
	ErrNotFound    = errString("not found")
	ErrInvalidName = errString("invalid name")
	ErrNoSerials   = errString("no serial numbers to save")
)

type errString string

func (e errString) Error() string { return string(e) }

// ScanPersister appends one serial number to an item's record in a session.
type ScanPersister interface {
	PersistScan(ctx context.Context, rec domain.ScanRecord) error
}

// SerialExporter stores an extraction export as one named list per part.
type SerialExporter interface {
	ExportSerials(ctx context.Context, sessionName string, serialsByPart map[string][]string) error
}

// SessionStore manages storage sessions and their recorded files.
type SessionStore interface {
	CreateSession(ctx context.Context, sourceName string, source io.Reader) (domain.Session, error)
	// LatestSource returns the source of the newest session that kept one.
	LatestSource(ctx context.Context) (domain.SourceFile, error)
	ListSessions(ctx context.Context) ([]domain.SessionSummary, error)
	SessionFiles(ctx context.Context, name string) ([]domain.SessionFile, error)
}

// StockTakeStore keeps snapshots of stock-take working lists.
type StockTakeStore interface {
	SaveStockTake(ctx context.Context, items []domain.StockTakeItem) (name string, err error)
	ListStockTakes(ctx context.Context) ([]domain.SnapshotInfo, error)
	LoadStockTake(ctx context.Context, name string) ([]domain.StockTakeItem, error)
}

// Storage is implemented by every storage backend.
type Storage interface {
	ScanPersister
	SerialExporter
	SessionStore
	StockTakeStore
	Close()
}
