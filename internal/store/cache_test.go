package store

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "estimates.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("/tmp/s.jsonl", 1000, 2048, 500); err != nil {
		t.Fatalf("Put: %v", err)
	}

	tokens, ok := c.Get("/tmp/s.jsonl", 1000, 2048)
	if !ok {
		t.Fatal("Get missed a fresh entry")
	}
	if tokens != 500 {
		t.Errorf("tokens = %d, want 500", tokens)
	}
}

func TestCache_StaleEntryMisses(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("/tmp/s.jsonl", 1000, 2048, 500); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get("/tmp/s.jsonl", 2000, 2048); ok {
		t.Error("Get hit despite a changed mtime")
	}
	if _, ok := c.Get("/tmp/s.jsonl", 1000, 4096); ok {
		t.Error("Get hit despite a changed size")
	}
	if _, ok := c.Get("/tmp/other.jsonl", 1000, 2048); ok {
		t.Error("Get hit for an unknown path")
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("/tmp/s.jsonl", 1000, 2048, 500); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("/tmp/s.jsonl", 2000, 4096, 900); err != nil {
		t.Fatal(err)
	}

	tokens, ok := c.Get("/tmp/s.jsonl", 2000, 4096)
	if !ok || tokens != 900 {
		t.Errorf("Get = %d, %v; want 900, true", tokens, ok)
	}

	count, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1 after replace", count)
	}
}

func TestCache_Prune(t *testing.T) {
	c := openTestCache(t)

	// One entry backed by a real file, one pointing at nothing.
	live := filepath.Join(t.TempDir(), "live.jsonl")
	if err := os.WriteFile(live, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(live, 1, 3, 10); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("/nonexistent/gone.jsonl", 1, 1, 20); err != nil {
		t.Fatal(err)
	}

	removed, err := c.Prune()
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune removed %d, want 1", removed)
	}

	if _, ok := c.Get(live, 1, 3); !ok {
		t.Error("Prune dropped an entry whose file still exists")
	}
	count, err := c.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1 after prune", count)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "estimates.db")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parents: %v", err)
	}
	defer c.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}
