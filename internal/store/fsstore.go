package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// FSStore persists records as pretty-printed JSON files under a root
// directory. Mutations on a logical directory are serialized by a
// per-directory mutex, closing the read-rename-delete race window that an
// unlocked multi-step rename would otherwise have. Each directory keeps an
// id → filename index, built on first use and maintained on every mutation,
// so by-ID operations do not re-scan the disk.
type FSStore struct {
	root string

	mu   sync.Mutex
	dirs map[string]*dirState
}

type dirState struct {
	mu    sync.Mutex
	index map[string]string // id → filename; nil until first build
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root, dirs: make(map[string]*dirState)}
}

func (s *FSStore) dir(dir string) *dirState {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dirs[dir]
	if !ok {
		d = &dirState{}
		s.dirs[dir] = d
	}
	return d
}

// recordID is the minimal shape needed to identify a stored file's owner.
type recordID struct {
	ID string `json:"id"`
}

func (s *FSStore) Write(ctx context.Context, dir string, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := s.dir(dir)
	d.mu.Lock()
	defer d.mu.Unlock()

	abs := filepath.Join(s.root, dir)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("store: create dir %s: %w", dir, err)
	}

	name, err := s.resolveTargetName(abs, rec)
	if err != nil {
		return err
	}
	if err := writeRecordFile(filepath.Join(abs, name), rec); err != nil {
		return err
	}
	if d.index != nil {
		d.index[rec.RecordID()] = name
	}
	return nil
}

// resolveTargetName picks the filename for rec inside abs: the plain derived
// name, unless that file already belongs to a different ID — then the
// 8-char ID suffix disambiguates. A same-ID match overwrites in place.
func (s *FSStore) resolveTargetName(abs string, rec Record) (string, error) {
	name := BaseName(rec) + ".json"
	raw, err := os.ReadFile(filepath.Join(abs, name))
	if os.IsNotExist(err) {
		return name, nil
	}
	if err != nil {
		return "", fmt.Errorf("store: probe %s: %w", name, err)
	}
	var owner recordID
	if json.Unmarshal(raw, &owner) == nil && owner.ID == rec.RecordID() {
		return name, nil
	}
	// Taken by someone else (or unreadable — assume someone else's).
	return BaseName(rec) + "_" + ShortID(rec.RecordID()) + ".json", nil
}

func (s *FSStore) Update(ctx context.Context, dir, id string, apply func(raw []byte) (Record, error)) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d := s.dir(dir)
	d.mu.Lock()
	defer d.mu.Unlock()

	abs := filepath.Join(s.root, dir)
	oldName, err := s.locate(abs, d, id)
	if err != nil {
		return nil, err
	}

	oldPath := filepath.Join(abs, oldName)
	raw, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", oldName, err)
	}

	updated, err := apply(raw)
	if err != nil {
		return nil, err
	}

	newName, err := s.resolveTargetName(abs, updated)
	if err != nil {
		return nil, err
	}
	if err := writeRecordFile(filepath.Join(abs, newName), updated); err != nil {
		return nil, err
	}
	// New file first, old file second: a crash in between leaves a readable
	// duplicate that the next index build reconciles by ID.
	if newName != oldName {
		if err := os.Remove(oldPath); err != nil {
			return nil, fmt.Errorf("store: remove renamed %s: %w", oldName, err)
		}
	}
	if d.index != nil {
		d.index[id] = newName
	}
	return updated, nil
}

func (s *FSStore) Scan(ctx context.Context, dir string, visit func(raw []byte) error) error {
	abs := filepath.Join(s.root, dir)
	entries, err := os.ReadDir(abs)
	if os.IsNotExist(err) {
		return nil // missing directory reads as empty
	}
	if err != nil {
		return fmt.Errorf("store: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(abs, entry.Name()))
		if err != nil {
			log.Warn().Str("dir", dir).Str("file", entry.Name()).Err(err).
				Msg("store: skipping unreadable record")
			continue
		}
		if err := visit(raw); err != nil {
			if err == ErrStopScan {
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *FSStore) Remove(ctx context.Context, dir, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := s.dir(dir)
	d.mu.Lock()
	defer d.mu.Unlock()

	abs := filepath.Join(s.root, dir)
	name, err := s.locate(abs, d, id)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(abs, name)); err != nil {
		return fmt.Errorf("store: remove %s: %w", name, err)
	}
	delete(d.index, id)
	return nil
}

// locate resolves an ID to its filename via the directory index, rebuilding
// the index when it is cold or stale. Caller holds the directory lock.
func (s *FSStore) locate(abs string, d *dirState, id string) (string, error) {
	if d.index != nil {
		if name, ok := d.index[id]; ok {
			if ownerOf(filepath.Join(abs, name)) == id {
				return name, nil
			}
			// Stale entry (external change) — rebuild below.
		} else {
			return "", ErrNotFound
		}
	}
	index, err := buildIndex(abs)
	if err != nil {
		return "", err
	}
	d.index = index
	name, ok := index[id]
	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

// buildIndex scans a physical directory into an id → filename map.
// Unparseable files are logged and skipped; duplicate IDs (a crashed rename
// left both files behind) keep the first file seen, matching scan order.
func buildIndex(abs string) (map[string]string, error) {
	index := make(map[string]string)
	entries, err := os.ReadDir(abs)
	if os.IsNotExist(err) {
		return index, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read dir %s: %w", abs, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := ownerOf(filepath.Join(abs, entry.Name()))
		if id == "" {
			log.Warn().Str("file", entry.Name()).Msg("store: skipping record without id")
			continue
		}
		if prev, dup := index[id]; dup {
			log.Warn().Str("id", id).Str("kept", prev).Str("ignored", entry.Name()).
				Msg("store: duplicate record files for one id")
			continue
		}
		index[id] = entry.Name()
	}
	return index, nil
}

// ownerOf reads just the id field of a stored file; empty on any failure.
func ownerOf(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var owner recordID
	if err := json.Unmarshal(raw, &owner); err != nil {
		return ""
	}
	return owner.ID
}

func writeRecordFile(path string, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", rec.RecordID(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", filepath.Base(path), err)
	}
	return nil
}
