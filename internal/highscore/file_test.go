package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	return store
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(); err == nil {
		t.Error("Load of a missing file should return an error")
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(50); err != nil {
		t.Fatalf("Save(50) failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 50 {
		t.Errorf("Load() = %d, expected 50", got)
	}

	// Exact file layout: one object, one field
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"highscore":50}` {
		t.Errorf("File content = %s, expected {\"highscore\":50}", data)
	}
}

func TestSaveIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(120); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(120); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("Writing the same value twice changed the file: %s vs %s", first, second)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(10); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(99); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != 99 {
		t.Errorf("Load() = %d, expected 99 (overwritten, not appended)", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(), []byte("not json at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("Load of a corrupt file should return an error")
	}

	if err := os.WriteFile(store.Path(), []byte(`{"highscore":-3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("Load of a negative score should return an error")
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	base := t.TempDir()
	store, err := NewFileStore(filepath.Join(base, "deep", "nested", "highscore.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(7); err != nil {
		t.Fatalf("Save should create parent directories: %v", err)
	}

	got, err := store.Load()
	if err != nil || got != 7 {
		t.Errorf("Load() = (%d, %v), expected (7, nil)", got, err)
	}
}

func TestEmptyPathRejected(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("NewFileStore(\"\") should fail")
	}
}
