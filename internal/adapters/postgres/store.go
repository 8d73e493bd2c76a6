package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
)

const combinedExport = "extracted_serial_numbers.txt"

func (db *DB) CreateSession(ctx context.Context, sourceName string, source io.Reader) (domain.Session, error) {
	now := db.now()
	sess := domain.Session{
		Name:       domain.SessionPrefix + domain.Stamp(now) + "_" + domain.SafeName(sourceName),
		SourceName: sourceName,
		CreatedAt:  now,
	}
	var data []byte
	if source != nil {
		var err error
		if data, err = io.ReadAll(source); err != nil {
			return domain.Session{}, fmt.Errorf("postgres: read source: %w", err)
		}
	}
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO sessions (name, source_name, source, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (name) DO NOTHING
    `, sess.Name, sourceName, data, now)
	if err != nil {
		return domain.Session{}, fmt.Errorf("postgres: create session: %w", err)
	}
	return sess, nil
}

// PersistScan appends one serial line, creating the session row if a device
// joined a session this database has not seen.
func (db *DB) PersistScan(ctx context.Context, rec domain.ScanRecord) (err error) {
	if !domain.ValidSessionName(rec.Session) {
		return ports.ErrInvalidName
	}
	if rec.ItemCode == "" || rec.SerialNumber == "" {
		return fmt.Errorf("postgres: persist scan: missing item code or serial")
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = ensureSession(ctx, tx, rec.Session); err != nil {
		return err
	}
	file, err := itemFile(ctx, tx, rec.Session, rec.ItemCode)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO session_lines (id, session_name, file_name, item_key, line)
        VALUES ($1, $2, $3, $4, $5)
    `, uuid.New(), rec.Session, file, rec.ItemCode, rec.SerialNumber)
	return err
}

// LatestSource returns the manifest of the newest session that kept one.
func (db *DB) LatestSource(ctx context.Context) (domain.SourceFile, error) {
	var name string
	var data []byte
	err := db.Pool.QueryRow(ctx, `
        SELECT source_name, source FROM sessions
        WHERE source IS NOT NULL
        ORDER BY created_at DESC
        LIMIT 1
    `).Scan(&name, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SourceFile{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.SourceFile{}, fmt.Errorf("postgres: latest source: %w", err)
	}
	return domain.SourceFile{Name: domain.LatestSourceName(name), Data: data}, nil
}

// ExportSerials replaces the part files of a session and its combined list.
func (db *DB) ExportSerials(ctx context.Context, sessionName string, serialsByPart map[string][]string) (err error) {
	if !domain.ValidSessionName(sessionName) {
		return ports.ErrInvalidName
	}
	var rows [][]any
	var files, combined []string
	used := map[string]bool{combinedExport: true}
	for _, key := range sortedParts(serialsByPart) {
		part := strings.TrimSpace(key)
		var kept []string
		for _, sn := range serialsByPart[key] {
			if sn = strings.TrimSpace(sn); sn != "" {
				kept = append(kept, sn)
			}
		}
		if len(kept) == 0 {
			continue
		}
		file := domain.UniqueFileName(part, func(n string) bool { return used[n] })
		used[file] = true
		for _, sn := range kept {
			rows = append(rows, []any{uuid.New(), sessionName, file, part, sn})
		}
		files = append(files, file)
		combined = append(combined, "["+part+"]")
		combined = append(combined, kept...)
	}
	if len(rows) == 0 {
		return ports.ErrNoSerials
	}
	for _, line := range combined {
		rows = append(rows, []any{uuid.New(), sessionName, combinedExport, nil, line})
	}
	files = append(files, combinedExport)

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = ensureSession(ctx, tx, sessionName); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM session_lines WHERE session_name = $1 AND file_name = ANY($2)`, sessionName, files); err != nil {
		return err
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"session_lines"},
		[]string{"id", "session_name", "file_name", "item_key", "line"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (db *DB) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT s.name, s.created_at, COUNT(DISTINCT l.file_name)
        FROM sessions s
        LEFT JOIN session_lines l ON l.session_name = s.name
        GROUP BY s.name, s.created_at
        ORDER BY s.created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SessionSummary
	for rows.Next() {
		var s domain.SessionSummary
		if err := rows.Scan(&s.Name, &s.Date, &s.FileCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) SessionFiles(ctx context.Context, name string) ([]domain.SessionFile, error) {
	if !domain.ValidSessionName(name) {
		return nil, ports.ErrInvalidName
	}
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sessions WHERE name = $1)`, name).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ports.ErrNotFound
	}

	rows, err := db.Pool.Query(ctx, `
        SELECT file_name, line FROM session_lines
        WHERE session_name = $1
        ORDER BY file_name, position
    `, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SessionFile
	for rows.Next() {
		var file, line string
		if err := rows.Scan(&file, &line); err != nil {
			return nil, err
		}
		if n := len(out); n == 0 || out[n-1].Name != file {
			out = append(out, domain.SessionFile{Name: file})
		}
		out[len(out)-1].Lines = append(out[len(out)-1].Lines, line)
	}
	return out, rows.Err()
}

func (db *DB) SaveStockTake(ctx context.Context, items []domain.StockTakeItem) (string, error) {
	now := db.now()
	name := "stock_take_" + domain.Stamp(now) + ".txt"
	if items == nil {
		items = []domain.StockTakeItem{}
	}
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO stock_takes (name, items, created_at) VALUES ($1, $2, $3)
        ON CONFLICT (name) DO UPDATE SET items = EXCLUDED.items
    `, name, items, now)
	if err != nil {
		return "", fmt.Errorf("postgres: save stock take: %w", err)
	}
	return name, nil
}

func (db *DB) ListStockTakes(ctx context.Context) ([]domain.SnapshotInfo, error) {
	rows, err := db.Pool.Query(ctx, `SELECT name, created_at FROM stock_takes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SnapshotInfo
	for rows.Next() {
		var s domain.SnapshotInfo
		if err := rows.Scan(&s.Name, &s.Date); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) LoadStockTake(ctx context.Context, name string) ([]domain.StockTakeItem, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, ports.ErrInvalidName
	}
	var stored []domain.StockTakeItem
	err := db.Pool.QueryRow(ctx, `SELECT items FROM stock_takes WHERE name = $1`, name).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var items []domain.StockTakeItem
	for _, it := range stored {
		if it.PartNumber != "" && it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return items, nil
}

func ensureSession(ctx context.Context, tx pgx.Tx, name string) error {
	_, err := tx.Exec(ctx, `INSERT INTO sessions (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	return err
}

// itemFile finds the file already holding key in the session or picks a free
// one. The session row lock serializes concurrent first scans of an item.
func itemFile(ctx context.Context, tx pgx.Tx, session, key string) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT 1 FROM sessions WHERE name = $1 FOR UPDATE`, session); err != nil {
		return "", err
	}
	var file string
	err := tx.QueryRow(ctx, `
        SELECT file_name FROM session_lines
        WHERE session_name = $1 AND item_key = $2
        LIMIT 1
    `, session, key).Scan(&file)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	rows, err := tx.Query(ctx, `SELECT DISTINCT file_name FROM session_lines WHERE session_name = $1`, session)
	if err != nil {
		return "", err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		taken[n] = true
	}
	return domain.UniqueFileName(key, func(n string) bool { return taken[n] }), nil
}

func sortedParts(m map[string][]string) []string {
	parts := make([]string, 0, len(m))
	for p := range m {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	slices.Sort(parts)
	return parts
}

var _ ports.Storage = (*DB)(nil)
