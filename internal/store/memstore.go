package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is the in-memory Store used by tests and ephemeral environments.
// It mirrors FSStore's naming semantics exactly — collision suffixing,
// rename-on-update — just doing so against a map instead of a directory.
type MemStore struct {
	mu   sync.Mutex
	dirs map[string]map[string][]byte // dir → filename → content
}

func NewMemStore() *MemStore {
	return &MemStore{dirs: make(map[string]map[string][]byte)}
}

func (s *MemStore) files(dir string) map[string][]byte {
	f, ok := s.dirs[dir]
	if !ok {
		f = make(map[string][]byte)
		s.dirs[dir] = f
	}
	return f
}

func (s *MemStore) Write(ctx context.Context, dir string, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	files := s.files(dir)
	name := targetName(files, rec)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", rec.RecordID(), err)
	}
	files[name] = data
	return nil
}

func (s *MemStore) Update(ctx context.Context, dir, id string, apply func(raw []byte) (Record, error)) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	files := s.files(dir)
	oldName, raw, ok := findByID(files, id)
	if !ok {
		return nil, ErrNotFound
	}
	updated, err := apply(raw)
	if err != nil {
		return nil, err
	}
	newName := targetName(files, updated)
	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: marshal %s: %w", id, err)
	}
	files[newName] = data
	if newName != oldName {
		delete(files, oldName)
	}
	return updated, nil
}

func (s *MemStore) Scan(ctx context.Context, dir string, visit func(raw []byte) error) error {
	s.mu.Lock()
	snapshot := make([][]byte, 0, len(s.dirs[dir]))
	for _, raw := range s.dirs[dir] {
		snapshot = append(snapshot, raw)
	}
	s.mu.Unlock()

	for _, raw := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
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

func (s *MemStore) Remove(ctx context.Context, dir, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	files := s.files(dir)
	name, _, ok := findByID(files, id)
	if !ok {
		return ErrNotFound
	}
	delete(files, name)
	return nil
}

func targetName(files map[string][]byte, rec Record) string {
	name := BaseName(rec) + ".json"
	raw, exists := files[name]
	if !exists {
		return name
	}
	var owner recordID
	if json.Unmarshal(raw, &owner) == nil && owner.ID == rec.RecordID() {
		return name
	}
	return BaseName(rec) + "_" + ShortID(rec.RecordID()) + ".json"
}

func findByID(files map[string][]byte, id string) (string, []byte, bool) {
	for name, raw := range files {
		var owner recordID
		if json.Unmarshal(raw, &owner) == nil && owner.ID == id {
			return name, raw, true
		}
	}
	return "", nil, false
}
