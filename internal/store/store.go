// Package store implements the filesystem-backed document store underneath
// every repository. One record = one JSON file, named after the record's
// preferred display name, reachable by its stable ID regardless of filename.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Update/Remove when no file in the directory
// holds the requested ID. Read paths never return it — they yield nothing.
var ErrNotFound = errors.New("store: record not found")

// ErrStopScan can be returned from a Scan visit function to stop the scan
// early without reporting an error (first-match lookups).
var ErrStopScan = errors.New("store: stop scan")

// Record is anything the store can file: a stable ID plus a preferred
// display name. An empty preferred name files the record under its ID,
// which also removes any rename semantics (shifts, orders).
type Record interface {
	RecordID() string
	PreferredName() string
}

// Store is the persistence contract shared by the filesystem and in-memory
// implementations. Directories are logical partitions ("users/director",
// "locations", ...). Missing directories read as empty; writes create them.
type Store interface {
	// Write files rec under its derived name. A name collision with a
	// different ID gets an 8-char ID-prefix suffix; the same ID overwrites
	// in place.
	Write(ctx context.Context, dir string, rec Record) error

	// Update locates the record with the given ID, feeds its raw content to
	// apply, and re-files the result — renaming the file when the preferred
	// name changed (new file written before the old one is removed).
	// Returns ErrNotFound when no record matches.
	Update(ctx context.Context, dir, id string, apply func(raw []byte) (Record, error)) (Record, error)

	// Scan visits the raw content of every readable record in the directory,
	// in a single pass. Unreadable files are logged and skipped — a scan
	// never aborts on one bad file. Returning ErrStopScan from visit ends
	// the scan cleanly; any other error aborts and propagates.
	Scan(ctx context.Context, dir string, visit func(raw []byte) error) error

	// Remove unlinks the record with the given ID, or returns ErrNotFound.
	Remove(ctx context.Context, dir, id string) error
}

// filenameReplacer strips characters that are unsafe in filenames.
var filenameReplacer = strings.NewReplacer(
	"/", "", "\\", "", ":", "", "*", "", "?", "",
	"\"", "", "<", "", ">", "", "|", "",
)

// SanitizeName makes a display name filesystem-safe: forbidden characters
// stripped, whitespace runs collapsed to single spaces, ends trimmed.
func SanitizeName(name string) string {
	clean := filenameReplacer.Replace(name)
	return strings.Join(strings.Fields(clean), " ")
}

// BaseName derives the filename stem for a record: sanitized preferred name,
// falling back to the ID when the name sanitizes to nothing.
func BaseName(rec Record) string {
	if name := SanitizeName(rec.PreferredName()); name != "" {
		return name
	}
	return rec.RecordID()
}

// ShortID is the 8-character collision-suffix form of an ID.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
