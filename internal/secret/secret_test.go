package secret

import (
	"errors"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()

	if _, err := s.Get(PasswordName); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := s.Set(PasswordName, "hunter2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := s.Get(PasswordName)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "hunter2" {
		t.Errorf("expected hunter2, got %q", v)
	}

	if err := s.Set(PasswordName, "replaced"); err != nil {
		t.Fatal(err)
	}
	v, _ = s.Get(PasswordName)
	if v != "replaced" {
		t.Errorf("Set must replace, got %q", v)
	}

	if err := s.Delete(PasswordName); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(PasswordName); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Delete(PasswordName); err != nil {
		t.Errorf("deleting an absent secret must not error, got %v", err)
	}
}
