package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abhi22shek/portfolio-core/internal/models"
	"go.uber.org/zap"
)

func TestLoad_MissingKey(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	fallback := []models.Entry{{ID: "seed"}}
	got := Load(s, "projects", fallback)
	if len(got) != 1 || got[0].ID != "seed" {
		t.Errorf("expected fallback, got %+v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	entries := []models.Entry{
		{ID: "p1", Title: "One", Tags: []string{"frontend"}, Featured: true, CreatedAt: 100},
		{ID: "p2", Title: "Two", Tags: []string{"backend", "go"}, CreatedAt: 99},
	}
	Save(s, "projects", entries)

	got := Load(s, "projects", []models.Entry(nil))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for i := range entries {
		if got[i].ID != entries[i].ID || got[i].Title != entries[i].Title ||
			got[i].Featured != entries[i].Featured || got[i].CreatedAt != entries[i].CreatedAt {
			t.Errorf("entry %d mismatch: got %+v want %+v", i, got[i], entries[i])
		}
	}
	if len(got[1].Tags) != 2 || got[1].Tags[0] != "backend" {
		t.Errorf("tags not preserved: %+v", got[1].Tags)
	}
}

func TestLoad_CorruptedDocument(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, zap.NewNop())

	if err := os.WriteFile(filepath.Join(dir, "projects.json"), []byte("not json"), 0o600); err != nil {
		t.Fatalf("write corrupted file: %v", err)
	}

	got := Load(s, "projects", []models.Entry{{ID: "fallback"}})
	if len(got) != 1 || got[0].ID != "fallback" {
		t.Errorf("expected fallback on corruption, got %+v", got)
	}
}

func TestLoad_UnknownSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, zap.NewNop())

	raw, _ := json.Marshal(envelope{Version: 99, Data: json.RawMessage(`[]`)})
	if err := os.WriteFile(filepath.Join(dir, "projects.json"), raw, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got := Load(s, "projects", []models.Entry{{ID: "fallback"}})
	if len(got) != 1 || got[0].ID != "fallback" {
		t.Errorf("expected fallback on unknown version, got %+v", got)
	}
}

func TestLoad_ShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, zap.NewNop())

	raw, _ := json.Marshal(envelope{Version: schemaVersion, Data: json.RawMessage(`{"nope":true}`)})
	if err := os.WriteFile(filepath.Join(dir, "projects.json"), raw, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got := Load(s, "projects", []models.Entry(nil))
	if got != nil {
		t.Errorf("expected nil fallback on shape mismatch, got %+v", got)
	}
}

func TestRemove(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	Save(s, "projects", []models.Entry{{ID: "p1"}})
	s.Remove("projects")

	got := Load(s, "projects", []models.Entry(nil))
	if got != nil {
		t.Errorf("expected missing document after Remove, got %+v", got)
	}

	// Removing a missing key is not an error.
	s.Remove("projects")
}

func TestSave_UnwritableDirIsSwallowed(t *testing.T) {
	// Point the store at a path that cannot be a directory.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	s := New(filepath.Join(blocker, "store"), zap.NewNop())
	// Must not panic or error out; failure is logged and swallowed.
	Save(s, "projects", []models.Entry{{ID: "p1"}})
}
