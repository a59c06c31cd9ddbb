package services

import (
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func testAssets() []domain.Asset {
	return []domain.Asset{
		{ID: 1, Name: "Servidor SQL", IPAddress: "10.0.0.10", MACAddress: "AA:BB:CC:00:00:01", Status: "Online", Condition: "Disponível"},
		{ID: 2, Name: "Notebook Dell", IPAddress: "10.0.0.23", MACAddress: "AA:BB:CC:00:00:02", Status: "Offline", Condition: "Manutenção"},
		{ID: 3, Name: "Impressora HP", IPAddress: "10.0.0.40", MACAddress: "AA:BB:CC:00:00:03", Status: "Online", Condition: "Alocado"},
	}
}

func TestStoreReplaceAndCurrent(t *testing.T) {
	store := NewStore()

	if store.Len() != 0 {
		t.Fatalf("new store should be empty, has %d", store.Len())
	}

	store.Replace(testAssets())
	current := store.Current()

	if len(current) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(current))
	}

	// Server order is preserved
	if current[0].ID != 1 || current[1].ID != 2 || current[2].ID != 3 {
		t.Errorf("store reordered assets: %v", current)
	}

	// Replace is wholesale, not a merge
	store.Replace([]domain.Asset{{ID: 9, Name: "Roteador"}})
	current = store.Current()
	if len(current) != 1 || current[0].ID != 9 {
		t.Errorf("replace should discard the previous list, got %v", current)
	}
}

func TestStoreCurrentReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Replace(testAssets())

	current := store.Current()
	current[0].Name = "mutated"

	if got, _ := store.Find(1); got.Name != "Servidor SQL" {
		t.Errorf("mutating Current()'s result leaked into the store: %q", got.Name)
	}
}

func TestStoreFind(t *testing.T) {
	store := NewStore()
	store.Replace(testAssets())

	a, ok := store.Find(2)
	if !ok {
		t.Fatal("expected to find asset 2")
	}
	if a.Name != "Notebook Dell" {
		t.Errorf("found wrong asset: %q", a.Name)
	}

	if _, ok := store.Find(99); ok {
		t.Error("should not find missing id")
	}
}

func TestStoreFilter(t *testing.T) {
	store := NewStore()
	store.Replace(testAssets())

	cases := []struct {
		term string
		want []int
	}{
		{"dell", []int{2}},
		{"NOTEBOOK", []int{2}},        // case-insensitive
		{"online", []int{1, 3}},       // status field
		{"manutenção", []int{2}},      // condition field
		{"10.0.0", []int{1, 2, 3}},    // ip substring
		{"aa:bb:cc:00:00:03", []int{3}}, // mac field
		{"", []int{1, 2, 3}},          // empty term returns everything
		{"zzz", nil},
	}

	for _, c := range cases {
		got := store.Filter(c.term)
		if len(got) != len(c.want) {
			t.Errorf("Filter(%q) returned %d assets, want %d", c.term, len(got), len(c.want))
			continue
		}
		for i, id := range c.want {
			if got[i].ID != id {
				t.Errorf("Filter(%q)[%d] = id %d, want %d", c.term, i, got[i].ID, id)
			}
		}
	}
}

func TestStoreFilterIsSubsetAndPure(t *testing.T) {
	store := NewStore()
	store.Replace(testAssets())

	filtered := store.Filter("servidor")
	if len(filtered) != 1 {
		t.Fatalf("expected 1 match, got %d", len(filtered))
	}

	// Filtering never shrinks the underlying store
	if store.Len() != 3 {
		t.Errorf("filter mutated the store, len=%d", store.Len())
	}

	// Clearing the query returns the full last-fetched set unchanged
	all := store.Filter("")
	if len(all) != 3 {
		t.Errorf("clearing the query should return 3 assets, got %d", len(all))
	}
}
