package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func TestSaveLoadClear(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	// Nothing stored yet
	user, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no session, got %+v", user)
	}

	saved := domain.User{ID: 1, Name: "Gabi", Email: "gabi@example.com"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	user, err = store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if user == nil || *user != saved {
		t.Errorf("loaded session differs: %+v", user)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	user, _ = store.Load()
	if user != nil {
		t.Error("session should be gone after clear")
	}
}

func TestSaveMirrorsLegacyKey(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	if err := store.Save(domain.User{ID: 2, Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"usuario_logado.json", "app_user.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestLoadFallsBackToLegacyFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	// Only the old key exists, written by an earlier version
	legacy := []byte(`{"id":3,"nome":"Leo","email":"leo@example.com"}`)
	if err := os.WriteFile(filepath.Join(dir, "app_user.json"), legacy, 0600); err != nil {
		t.Fatal(err)
	}

	user, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if user == nil || user.Name != "Leo" {
		t.Errorf("legacy session not picked up: %+v", user)
	}
}
