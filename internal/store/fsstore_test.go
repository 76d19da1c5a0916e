package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecord is the minimal record shape used across store tests.
type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

func (r *testRecord) RecordID() string      { return r.ID }
func (r *testRecord) PreferredName() string { return r.Name }

// stores runs the same behavior suite against both implementations.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"fs":  NewFSStore(t.TempDir()),
		"mem": NewMemStore(),
	}
}

func decodeRecord(t *testing.T, raw []byte) *testRecord {
	t.Helper()
	var rec testRecord
	require.NoError(t, json.Unmarshal(raw, &rec))
	return &rec
}

func scanAll(t *testing.T, st Store, dir string) []*testRecord {
	t.Helper()
	var out []*testRecord
	require.NoError(t, st.Scan(context.Background(), dir, func(raw []byte) error {
		out = append(out, decodeRecord(t, raw))
		return nil
	}))
	return out
}

func TestStore_WriteAndScan(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha"}))
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-2", Name: "Beta"}))

			got := scanAll(t, st, "things")
			assert.Len(t, got, 2)
		})
	}
}

func TestStore_MissingDirectoryReadsEmpty(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got := scanAll(t, st, "never-written")
			assert.Empty(t, got)
		})
	}
}

func TestStore_SameIDOverwritesInPlace(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha", Note: "v1"}))
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha", Note: "v2"}))

			got := scanAll(t, st, "things")
			require.Len(t, got, 1)
			assert.Equal(t, "v2", got[0].Note)
		})
	}
}

func TestStore_NameCollisionGetsIDSuffix(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st := NewFSStore(root)

	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "aaaaaaaa-1111", Name: "Twin"}))
	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "bbbbbbbb-2222", Name: "Twin"}))

	assert.FileExists(t, filepath.Join(root, "things", "Twin.json"))
	assert.FileExists(t, filepath.Join(root, "things", "Twin_bbbbbbbb.json"))

	// Both remain independently addressable by ID.
	_, err := st.Update(ctx, "things", "bbbbbbbb-2222", func(raw []byte) (Record, error) {
		rec := decodeRecord(t, raw)
		rec.Note = "updated"
		return rec, nil
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(root, "things", "Twin.json"))
	require.NoError(t, err)
	assert.Empty(t, decodeRecord(t, raw).Note)
}

func TestStore_UpdateRenamesFile(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st := NewFSStore(root)

	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Old Name"}))

	_, err := st.Update(ctx, "things", "id-1", func(raw []byte) (Record, error) {
		rec := decodeRecord(t, raw)
		rec.Name = "New Name"
		return rec, nil
	})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "things", "Old Name.json"))
	assert.FileExists(t, filepath.Join(root, "things", "New Name.json"))

	entries, err := os.ReadDir(filepath.Join(root, "things"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_UpdateUnknownID(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Update(context.Background(), "things", "ghost", func(raw []byte) (Record, error) {
				t.Fatal("apply must not run for an unknown id")
				return nil, nil
			})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha"}))

			require.NoError(t, st.Remove(ctx, "things", "id-1"))
			assert.Empty(t, scanAll(t, st, "things"))

			assert.ErrorIs(t, st.Remove(ctx, "things", "id-1"), ErrNotFound)
		})
	}
}

func TestStore_ScanStopsCleanlyOnStopScan(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha"}))
			require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-2", Name: "Beta"}))

			visits := 0
			err := st.Scan(ctx, "things", func(raw []byte) error {
				visits++
				return ErrStopScan
			})
			assert.NoError(t, err)
			assert.Equal(t, 1, visits)
		})
	}
}

func TestStore_ScanIgnoresNonJSONFiles(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st := NewFSStore(root)

	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha"}))
	require.NoError(t, os.WriteFile(filepath.Join(root, "things", "notes.txt"), []byte("scratch"), 0o644))

	assert.Len(t, scanAll(t, st, "things"), 1)
}

func TestStore_EmptyNameFilesUnderID(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st := NewFSStore(root)

	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-77", Name: ""}))
	assert.FileExists(t, filepath.Join(root, "things", "id-77.json"))
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		`Joe's Cafe: "Best" <Ever>?`: "Joe's Cafe Best Ever",
		"  spaced   out  name ":      "spaced out name",
		`a/b\c*d|e`:                  "abcde",
		"***":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in), "input %q", in)
	}
}

func TestStore_IndexSurvivesExternalChange(t *testing.T) {
	// A file renamed behind the store's back must still be found by ID.
	ctx := context.Background()
	root := t.TempDir()
	st := NewFSStore(root)

	require.NoError(t, st.Write(ctx, "things", &testRecord{ID: "id-1", Name: "Alpha"}))
	// Warm the index.
	_, err := st.Update(ctx, "things", "id-1", func(raw []byte) (Record, error) {
		return decodeRecord(t, raw), nil
	})
	require.NoError(t, err)

	// External rename.
	require.NoError(t, os.Rename(
		filepath.Join(root, "things", "Alpha.json"),
		filepath.Join(root, "things", "Moved.json"),
	))

	require.NoError(t, st.Remove(ctx, "things", "id-1"))
	assert.Empty(t, scanAll(t, st, "things"))
}
