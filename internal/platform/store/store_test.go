package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func recordID(r record) int { return r.ID }

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := Open(path, testLogger(), recordID)

	if c.Len() != 0 {
		t.Fatalf("expected empty collection, got %d records", c.Len())
	}
	if got := c.NextID(); got != 1 {
		t.Errorf("expected first id 1, got %d", got)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := Open(path, testLogger(), recordID)

	want := []record{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}
	for _, r := range want {
		if err := c.Append(r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	reopened := Open(path, testLogger(), recordID)
	if !reflect.DeepEqual(reopened.All(), want) {
		t.Errorf("round trip mismatch: got %+v, want %+v", reopened.All(), want)
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Open(path, testLogger(), recordID)
	if c.Len() != 0 {
		t.Fatalf("expected corrupt file to load as empty, got %d records", c.Len())
	}
}

func TestNextID_RecomputedFromSparseIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := Open(path, testLogger(), recordID)
	if err := c.Replace([]record{{ID: 3}, {ID: 17}, {ID: 5}}); err != nil {
		t.Fatal(err)
	}

	reopened := Open(path, testLogger(), recordID)
	if got := reopened.NextID(); got != 18 {
		t.Errorf("expected next id 18, got %d", got)
	}
}

func TestNextID_NeverReused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := Open(path, testLogger(), recordID)

	id := c.NextID()
	if err := c.Append(record{ID: id, Name: "only"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Replace(nil); err != nil {
		t.Fatal(err)
	}

	if got := c.NextID(); got != id+1 {
		t.Errorf("expected id %d after delete, got %d", id+1, got)
	}
}

func TestSeedIfMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	seed := []record{{ID: 1, Name: "seeded"}}

	c := Open(path, testLogger(), recordID)
	if err := c.SeedIfMissing(seed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.All(), seed) {
		t.Fatalf("expected seed contents, got %+v", c.All())
	}

	// Seed must be written through so the next open sees it.
	reopened := Open(path, testLogger(), recordID)
	if !reflect.DeepEqual(reopened.All(), seed) {
		t.Errorf("expected persisted seed, got %+v", reopened.All())
	}
}

func TestSeedIfMissing_SkipsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("corrupt"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Open(path, testLogger(), recordID)
	if err := c.SeedIfMissing([]record{{ID: 1}}); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Error("seed must not replace a corrupt (existing) file")
	}
}

func TestSeedIfMissing_SkipsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	first := Open(path, testLogger(), recordID)
	if err := first.Append(record{ID: 1, Name: "existing"}); err != nil {
		t.Fatal(err)
	}

	c := Open(path, testLogger(), recordID)
	if err := c.SeedIfMissing([]record{{ID: 9, Name: "seed"}}); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 || c.All()[0].Name != "existing" {
		t.Errorf("expected existing contents untouched, got %+v", c.All())
	}
}
