package services

import (
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	assets := []domain.Asset{
		{ID: 1, Status: "Online"},
		{ID: 2, Status: "Offline"},
		{ID: 3, Status: "Online"},
	}

	s := Summarize(assets)

	if s.Total != 3 || s.Online != 2 || s.Offline != 1 {
		t.Errorf("summary = %+v, want total=3 online=2 offline=1", s)
	}

	avail := s.Availability()
	if avail < 66.6 || avail > 66.7 {
		t.Errorf("availability = %f, want ~66.7", avail)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Availability() != 0 {
		t.Errorf("availability of empty list must be 0, got %f", s.Availability())
	}
}

func TestSummarizeMaintenance(t *testing.T) {
	assets := []domain.Asset{
		{Status: "Online", Condition: domain.ConditionMaintenance},
		{Status: "Offline", Condition: domain.ConditionAvailable},
	}
	s := Summarize(assets)
	if s.Maintenance != 1 {
		t.Errorf("maintenance = %d, want 1", s.Maintenance)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name, typ, want string
	}{
		{"Notebook Dell", "", "Notebooks"},
		{"Servidor SQL", "", "Servidores"},
		{"Impressora HP", "", "Impressoras"},
		{"iPhone do Diretor", "", "Smartphones"},
		{"Desktop RH", "", "Computadores"},
		{"Camera IP", "", "Outros"},
		{"", "", "Outros"},
		// Type field participates in the match
		{"Sala 2", "Impressora", "Impressoras"},
		// First-match-wins: "macbook" also contains "mac"-ish desktop words,
		// but Notebooks is declared first
		{"MacBook Pro", "", "Notebooks"},
		// Case-insensitive
		{"SERVIDOR ARQUIVOS", "", "Servidores"},
	}

	for _, c := range cases {
		got := Classify(domain.Asset{Name: c.name, Type: c.typ})
		if got != c.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", c.name, c.typ, got, c.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	labels := make(map[string]bool)
	for _, l := range CategoryLabels() {
		labels[l] = true
	}

	weird := []domain.Asset{
		{Name: "###"},
		{Name: "çãé"},
		{Type: "???"},
		{},
	}
	for _, a := range weird {
		if !labels[Classify(a)] {
			t.Errorf("Classify(%+v) returned a label outside the fixed set", a)
		}
	}
}

func TestCountByCategory(t *testing.T) {
	assets := []domain.Asset{
		{Name: "Notebook Dell"},
		{Name: "Notebook Lenovo"},
		{Name: "Servidor SQL"},
		{Name: "Camera IP"},
	}

	counts := CountByCategory(assets)

	if counts["Notebooks"] != 2 {
		t.Errorf("Notebooks = %d, want 2", counts["Notebooks"])
	}
	if counts["Servidores"] != 1 {
		t.Errorf("Servidores = %d, want 1", counts["Servidores"])
	}
	if counts["Outros"] != 1 {
		t.Errorf("Outros = %d, want 1", counts["Outros"])
	}

	// Zero-count buckets are still present so the chart always shows them
	if _, ok := counts["Smartphones"]; !ok {
		t.Error("zero-count bucket Smartphones missing from result")
	}
	if len(counts) != len(CategoryLabels()) {
		t.Errorf("expected %d buckets, got %d", len(CategoryLabels()), len(counts))
	}
}
