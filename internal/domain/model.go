package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Core domain models shared by the trackers and the storage adapters. HTTP
// payloads live in internal/adapters/http; keep these decoupled from JSON shape.

// Item is one row of an uploaded guided manifest. Order within a manifest is
// the scan order.
type Item struct {
	ItemCode      string `json:"itemCode"`
	Company       string `json:"company,omitempty"`
	PartNumber    string `json:"partNumber"`
	ScansRequired int    `json:"scansRequired"`
}

// ItemProgress tracks accepted scans for the Item at the same index.
type ItemProgress struct {
	ScansRemaining int      `json:"scansRemaining"`
	SerialNumbers  []string `json:"serialNumbers"`
}

type StockTakeItem struct {
	PartNumber string `json:"partNumber"`
	Quantity   int    `json:"quantity"`
	Scanned    int    `json:"scanned"`
}

// Fulfilled reports whether every expected unit has been counted.
func (s StockTakeItem) Fulfilled() bool { return s.Scanned >= s.Quantity }

// ScanRecord is one accepted guided-mode scan handed to persistence.
type ScanRecord struct {
	Session      string
	ItemCode     string
	SerialNumber string
	ScannedAt    time.Time
}

// Session is a storage-side unit of work: one guided upload or one export.
type Session struct {
	Name       string
	SourceName string
	CreatedAt  time.Time
}

// SourceFile is the most recently uploaded manifest, kept for download.
type SourceFile struct {
	Name string
	Data []byte
}

// LatestSourceName is the download name of the latest upload, keeping the
// uploaded file's extension.
func LatestSourceName(sourceName string) string {
	return "latest_data" + strings.ToLower(filepath.Ext(sourceName))
}

type SessionSummary struct {
	Name      string
	Date      time.Time
	FileCount int
}

// SessionFile is a named list of serial numbers inside a storage session.
type SessionFile struct {
	Name  string
	Lines []string
}

type SnapshotInfo struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

var stampReplacer = strings.NewReplacer(":", "-", ".", "-")

// Stamp renders t as a filesystem-safe UTC timestamp used in session names,
// e.g. 2024-05-01T09-30-12-345Z.
func Stamp(t time.Time) string {
	return stampReplacer.Replace(t.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

// SessionPrefix starts every storage session name.
const SessionPrefix = "session_"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SafeName replaces every character outside [a-zA-Z0-9] with an underscore.
func SafeName(s string) string { return unsafeChars.ReplaceAllString(s, "_") }

// ValidSessionName rejects names that could escape the session area.
func ValidSessionName(name string) bool {
	return strings.HasPrefix(name, SessionPrefix) && !strings.Contains(name, "..") && name == filepath.Base(name)
}

// UniqueFileName names the text file for key inside a session. Keys that
// differ only in unsafe characters share a SafeName, so a numeric suffix is
// added until taken reports the name free.
func UniqueFileName(key string, taken func(name string) bool) string {
	base := SafeName(key)
	name := base + ".txt"
	for i := 2; taken(name); i++ {
		name = fmt.Sprintf("%s_%d.txt", base, i)
	}
	return name
}
