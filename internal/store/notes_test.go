package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvandyk/stickypad/internal/model"
)

func sampleSnapshots() []model.Snapshot {
	return []model.Snapshot{
		{
			Geometry: model.Rect{X: 100, Y: 100, Width: 240, Height: 180},
			Text:     "groceries",
			Pinned:   true,
		},
		{
			Geometry: model.Rect{X: 360, Y: 100, Width: 300, Height: 200},
			Text:     "call the plumber",
		},
	}
}

func TestSaveAndLoadNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := SaveNotes(path, sampleSnapshots(), ""); err != nil {
		t.Fatalf("SaveNotes failed: %v", err)
	}

	loaded, err := LoadNotes(path, "")
	if err != nil {
		t.Fatalf("LoadNotes failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(loaded))
	}
	if loaded[0].Text != "groceries" || !loaded[0].Pinned {
		t.Errorf("first snapshot mismatch: %+v", loaded[0])
	}
	if loaded[1].Geometry.X != 360 {
		t.Errorf("expected x=360, got %d", loaded[1].Geometry.X)
	}
}

func TestLoadNotesMissingFile(t *testing.T) {
	snaps, err := LoadNotes(filepath.Join(t.TempDir(), "notes.json"), "")
	if err != nil {
		t.Fatalf("missing file should load as empty, got: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}

func TestSaveAndLoadNotesEncrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := SaveNotes(path, sampleSnapshots(), "correct horse"); err != nil {
		t.Fatalf("SaveNotes failed: %v", err)
	}

	// The file on disk must be a container, not plain snapshots.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !IsEncrypted(raw) {
		t.Fatal("file should be an encrypted container")
	}

	loaded, err := LoadNotes(path, "correct horse")
	if err != nil {
		t.Fatalf("LoadNotes failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Text != "groceries" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadNotesWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := SaveNotes(path, sampleSnapshots(), "right"); err != nil {
		t.Fatal(err)
	}

	_, err := LoadNotes(path, "wrong")
	if !errors.Is(err, ErrBadPassword) {
		t.Errorf("expected ErrBadPassword, got %v", err)
	}
}

func TestLoadNotesEncryptedWithoutPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := SaveNotes(path, sampleSnapshots(), "secret"); err != nil {
		t.Fatal(err)
	}

	_, err := LoadNotes(path, "")
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestLoadNotesFloorsTinyGeometry(t *testing.T) {
	// A hand-edited file with a 10x10 note must come back at least
	// minimum-sized or the window could never be grabbed again.
	path := filepath.Join(t.TempDir(), "notes.json")

	snaps := []model.Snapshot{{
		Geometry: model.Rect{X: 50, Y: 50, Width: 10, Height: 10},
		Text:     "tiny",
	}}
	data, err := json.Marshal(snaps)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadNotes(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if loaded[0].Geometry.Width != model.MinNoteWidth {
		t.Errorf("expected width floored to %d, got %d", model.MinNoteWidth, loaded[0].Geometry.Width)
	}
	if loaded[0].Geometry.Height != model.MinNoteHeight {
		t.Errorf("expected height floored to %d, got %d", model.MinNoteHeight, loaded[0].Geometry.Height)
	}
}

func TestLoadNotesInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("[{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadNotes(path, ""); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveNotesNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	if err := SaveNotes(path, nil, ""); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected empty array, got %s", raw)
	}
}
