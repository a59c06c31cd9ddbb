package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func sampleAssets() []domain.Asset {
	return []domain.Asset{
		{ID: 1, Name: "Notebook Dell", Status: domain.StatusOnline, Type: "Notebook"},
		{ID: 2, Name: "Servidor SQL", Status: domain.StatusOffline, Type: "Servidor"},
		{ID: 3, Name: "Impressora HP", Status: domain.StatusOnline, Type: "Impressora"},
	}
}

func TestDashboardRendersBothCharts(t *testing.T) {
	var buf bytes.Buffer
	if err := NewDashboard(sampleAssets()).Render(&buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Status dos Ativos", "Ativos por Categoria", "Notebooks", "Outros"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered page to contain %q", want)
		}
	}
}

func TestDashboardRendersEmptyInventory(t *testing.T) {
	var buf bytes.Buffer
	if err := NewDashboard(nil).Render(&buf); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Ativos por Categoria") {
		t.Errorf("expected category chart even with no assets")
	}
}
