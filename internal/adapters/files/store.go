// Package files stores sessions as folders of plain-text serial lists under a
// data directory:
//
//	scans/session_<stamp>_<file>/<item code>.txt
//	excel_data/latest_data<ext>
//	stock_take/stock_take_<stamp>.txt
package files

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
)

// CombinedExport lists every exported part under a [part] header.
const CombinedExport = "extracted_serial_numbers.txt"

// itemIndex maps each per-item file of a session to the item code it holds,
// one "file<TAB>code" line per item.
const itemIndex = ".items"

type Store struct {
	scansDir  string
	sharedDir string
	stockDir  string

	mu  sync.Mutex
	now func() time.Time
}

func Open(dataDir string) (*Store, error) {
	s := &Store{
		scansDir:  filepath.Join(dataDir, "scans"),
		sharedDir: filepath.Join(dataDir, "excel_data"),
		stockDir:  filepath.Join(dataDir, "stock_take"),
		now:       time.Now,
	}
	for _, dir := range []string{s.scansDir, s.sharedDir, s.stockDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("files: create %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *Store) Close() {}

// CreateSession makes the session folder and keeps a copy of the uploaded
// source both inside it and as the shared latest upload.
func (s *Store) CreateSession(ctx context.Context, sourceName string, source io.Reader) (domain.Session, error) {
	now := s.now()
	sess := domain.Session{
		Name:       domain.SessionPrefix + domain.Stamp(now) + "_" + domain.SafeName(sourceName),
		SourceName: sourceName,
		CreatedAt:  now,
	}
	dir := filepath.Join(s.scansDir, sess.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.Session{}, fmt.Errorf("files: create session: %w", err)
	}
	if source == nil {
		return sess, nil
	}

	data, err := io.ReadAll(source)
	if err != nil {
		return domain.Session{}, fmt.Errorf("files: read source: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(sourceName))
	if err := os.WriteFile(filepath.Join(dir, "source_file"+ext), data, 0o644); err != nil {
		return domain.Session{}, fmt.Errorf("files: store source: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stale, err := filepath.Glob(filepath.Join(s.sharedDir, "latest_data*"))
	if err != nil {
		return domain.Session{}, fmt.Errorf("files: store shared source: %w", err)
	}
	for _, old := range stale {
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return domain.Session{}, fmt.Errorf("files: replace shared source: %w", err)
		}
	}
	if err := os.WriteFile(filepath.Join(s.sharedDir, domain.LatestSourceName(sourceName)), data, 0o644); err != nil {
		return domain.Session{}, fmt.Errorf("files: store shared source: %w", err)
	}
	return sess, nil
}

// LatestSource reads the shared copy of the newest upload.
func (s *Store) LatestSource(ctx context.Context) (domain.SourceFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches, err := filepath.Glob(filepath.Join(s.sharedDir, "latest_data*"))
	if err != nil {
		return domain.SourceFile{}, fmt.Errorf("files: %w", err)
	}
	var newest string
	var newestMod time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest, newestMod = m, info.ModTime()
		}
	}
	if newest == "" {
		return domain.SourceFile{}, ports.ErrNotFound
	}
	data, err := os.ReadFile(newest)
	if err != nil {
		return domain.SourceFile{}, fmt.Errorf("files: read shared source: %w", err)
	}
	return domain.SourceFile{Name: filepath.Base(newest), Data: data}, nil
}

// PersistScan appends one serial line to the item's file in the session.
func (s *Store) PersistScan(ctx context.Context, rec domain.ScanRecord) error {
	if err := validSessionName(rec.Session); err != nil {
		return err
	}
	if rec.ItemCode == "" || rec.SerialNumber == "" {
		return fmt.Errorf("files: persist scan: missing item code or serial")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dir := filepath.Join(s.scansDir, rec.Session)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("files: persist scan: %w", err)
	}
	file, err := itemFile(dir, rec.ItemCode)
	if err != nil {
		return fmt.Errorf("files: persist scan: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("files: persist scan: %w", err)
	}
	if _, err := fmt.Fprintln(f, rec.SerialNumber); err != nil {
		f.Close()
		return fmt.Errorf("files: persist scan: %w", err)
	}
	return f.Close()
}

// ExportSerials writes one file per part and a combined file listing every
// part under a [part] header.
func (s *Store) ExportSerials(ctx context.Context, sessionName string, serialsByPart map[string][]string) error {
	if err := validSessionName(sessionName); err != nil {
		return err
	}
	cleaned := cleanExport(serialsByPart)
	if len(cleaned) == 0 {
		return ports.ErrNoSerials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dir := filepath.Join(s.scansDir, sessionName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("files: export: %w", err)
	}

	var combined []string
	used := map[string]bool{CombinedExport: true}
	for _, part := range sortedKeys(cleaned) {
		serials := cleaned[part]
		file := domain.UniqueFileName(part, func(n string) bool { return used[n] })
		used[file] = true
		if err := os.WriteFile(filepath.Join(dir, file), []byte(strings.Join(serials, "\n")), 0o644); err != nil {
			return fmt.Errorf("files: export %s: %w", part, err)
		}
		combined = append(combined, "["+part+"]")
		combined = append(combined, serials...)
		combined = append(combined, "")
	}
	if err := os.WriteFile(filepath.Join(dir, CombinedExport), []byte(strings.Join(combined, "\n")), 0o644); err != nil {
		return fmt.Errorf("files: export combined: %w", err)
	}
	return nil
}

func (s *Store) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	entries, err := os.ReadDir(s.scansDir)
	if err != nil {
		return nil, fmt.Errorf("files: list sessions: %w", err)
	}
	var out []domain.SessionSummary
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), domain.SessionPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		txt, err := s.txtFiles(e.Name())
		if err != nil {
			continue
		}
		out = append(out, domain.SessionSummary{Name: e.Name(), Date: info.ModTime(), FileCount: len(txt)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) SessionFiles(ctx context.Context, name string) ([]domain.SessionFile, error) {
	if err := validSessionName(name); err != nil {
		return nil, err
	}
	names, err := s.txtFiles(name)
	if err != nil {
		return nil, err
	}
	var out []domain.SessionFile
	for _, n := range names {
		lines, err := readLines(filepath.Join(s.scansDir, name, n))
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SessionFile{Name: n, Lines: lines})
	}
	return out, nil
}

func (s *Store) txtFiles(session string) ([]string, error) {
	dir := filepath.Join(s.scansDir, session)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("files: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// SaveStockTake writes one "part,quantity,scanned" line per item.
func (s *Store) SaveStockTake(ctx context.Context, items []domain.StockTakeItem) (string, error) {
	name := "stock_take_" + domain.Stamp(s.now()) + ".txt"
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s,%d,%d", it.PartNumber, it.Quantity, it.Scanned))
	}
	if err := os.WriteFile(filepath.Join(s.stockDir, name), []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("files: save stock take: %w", err)
	}
	return name, nil
}

func (s *Store) ListStockTakes(ctx context.Context) ([]domain.SnapshotInfo, error) {
	entries, err := os.ReadDir(s.stockDir)
	if err != nil {
		return nil, fmt.Errorf("files: list stock takes: %w", err)
	}
	var out []domain.SnapshotInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, domain.SnapshotInfo{Name: e.Name(), Date: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) LoadStockTake(ctx context.Context, name string) ([]domain.StockTakeItem, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return nil, ports.ErrInvalidName
	}
	lines, err := readLines(filepath.Join(s.stockDir, name))
	if os.IsNotExist(err) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var items []domain.StockTakeItem
	for _, line := range lines {
		it := ParseStockTakeLine(line)
		if it.PartNumber != "" && it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return items, nil
}

// ParseStockTakeLine reads a "part,quantity,scanned" snapshot line. Missing
// or malformed numbers read as zero.
func ParseStockTakeLine(line string) domain.StockTakeItem {
	fields := strings.Split(line, ",")
	field := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}
	var it domain.StockTakeItem
	it.PartNumber = field(0)
	fmt.Sscanf(field(1), "%d", &it.Quantity)
	fmt.Sscanf(field(2), "%d", &it.Scanned)
	return it
}

// itemFile returns the file holding key's serials in the session dir,
// assigning a free name on first use. Callers hold s.mu.
func itemFile(dir, key string) (string, error) {
	path := filepath.Join(dir, itemIndex)
	lines, err := readLines(path)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	taken := map[string]bool{}
	for _, line := range lines {
		file, code, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		if code == key {
			return file, nil
		}
		taken[file] = true
	}
	file := domain.UniqueFileName(key, func(n string) bool { return taken[n] })
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(f, "%s\t%s\n", file, key); err != nil {
		f.Close()
		return "", err
	}
	return file, f.Close()
}

func validSessionName(name string) error {
	if !domain.ValidSessionName(name) {
		return ports.ErrInvalidName
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func cleanExport(in map[string][]string) map[string][]string {
	out := map[string][]string{}
	for part, serials := range in {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var kept []string
		for _, sn := range serials {
			if sn = strings.TrimSpace(sn); sn != "" {
				kept = append(kept, sn)
			}
		}
		if len(kept) > 0 {
			out[part] = kept
		}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var _ ports.Storage = (*Store)(nil)
