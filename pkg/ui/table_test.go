package ui

import (
	"strings"
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func TestAssetTableOneRowPerAsset(t *testing.T) {
	assets := []domain.Asset{
		{ID: 1, Name: "Servidor SQL", Status: "Online", Condition: "Disponível"},
		{ID: 2, Name: "Notebook Dell", Status: "Offline", Condition: "Manutenção"},
		{ID: 3, Name: "Impressora HP", Status: "Online", Condition: "Alocado"},
	}

	table := NewAssetTable(assets)
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}

	out := table.Render()
	// Input order preserved
	first := strings.Index(out, "Servidor SQL")
	second := strings.Index(out, "Notebook Dell")
	third := strings.Index(out, "Impressora HP")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("missing asset names in output:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Error("rows rendered out of input order")
	}
}

func TestAssetTableEmptyRendersPlaceholderOnce(t *testing.T) {
	out := NewAssetTable(nil).Render()

	if n := strings.Count(out, EmptyTablePlaceholder); n != 1 {
		t.Errorf("placeholder rendered %d times, want exactly 1:\n%s", n, out)
	}

	// Header + separator + placeholder, nothing else
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("empty table should have 3 lines, got %d", len(lines))
	}
}

func TestAssetRowFallbacks(t *testing.T) {
	row := AssetRow(domain.Asset{ID: 5, Name: "Switch"})

	// Missing MAC/IP/status/condition display as "-"
	for _, i := range []int{2, 3} {
		if row[i] != "-" {
			t.Errorf("cell %d = %q, want -", i, row[i])
		}
	}
}

func TestConditionStyleFallback(t *testing.T) {
	known := map[string]bool{
		domain.ConditionAvailable:   true,
		domain.ConditionMaintenance: true,
		domain.ConditionAllocated:   true,
		domain.ConditionCritical:    true,
	}
	for cond := range known {
		if ConditionStyle(cond).GetForeground() == BadgeNeutral.GetForeground() {
			t.Errorf("known condition %q should not use the neutral badge", cond)
		}
	}

	// Unknown vocabulary falls back to the neutral badge
	if ConditionStyle("Quebrado").GetForeground() != BadgeNeutral.GetForeground() {
		t.Error("unknown condition should fall back to the neutral badge")
	}
}

func TestRenderBar(t *testing.T) {
	bar := RenderBar(2, 4, 8, StyleSuccess)
	if !strings.Contains(bar, "████") {
		t.Errorf("half-full bar should have 4 filled cells: %q", bar)
	}

	// Non-zero counts always show at least one cell
	tiny := RenderBar(1, 1000, 10, StyleSuccess)
	if !strings.Contains(tiny, "█") {
		t.Errorf("non-zero count should render at least one cell: %q", tiny)
	}

	if RenderBar(0, 0, 10, StyleSuccess) != "" {
		t.Error("zero max should render nothing")
	}
}
