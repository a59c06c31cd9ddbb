package services

import (
	"strings"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// Summary holds the aggregates the dashboard charts and KPI counters render.
type Summary struct {
	Total       int
	Online      int
	Offline     int
	Maintenance int
}

// Summarize derives the status aggregates from an asset list. Every asset not
// reported Online counts as Offline; Maintenance is condition-based and
// overlaps the other two.
func Summarize(assets []domain.Asset) Summary {
	s := Summary{Total: len(assets)}
	for _, a := range assets {
		if a.Online() {
			s.Online++
		} else {
			s.Offline++
		}
		if a.Condition == domain.ConditionMaintenance {
			s.Maintenance++
		}
	}
	return s
}

// Availability returns the online percentage, 0 when the list is empty.
func (s Summary) Availability() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Online) / float64(s.Total) * 100
}

// categoryGroup is one ordered keyword group of the category chart.
type categoryGroup struct {
	label    string
	keywords []string
}

// categoryGroups is the canonical keyword table, merged from the page
// generations of the dashboard. Declaration order is the tie-break: the first
// group with a matching keyword wins.
var categoryGroups = []categoryGroup{
	{"Smartphones", []string{"mobile", "celular", "iphone", "android", "galaxy", "samsung", "xiaomi", "motorola", "redmi", "pixel"}},
	{"Notebooks", []string{"notebook", "laptop", "macbook", "thinkpad", "latitude", "inspiron", "ideapad", "zenbook", "vivobook"}},
	{"Computadores", []string{"computador", "desktop", "windows", "linux", "optiplex", "vostro", "torre", "pc"}},
	{"Impressoras", []string{"impressora", "print", "epson", "multifuncional"}},
	{"Servidores", []string{"servidor", "server", "srv", "serv"}},
}

// CategoryOther is the catch-all bucket for assets matching no keyword group.
const CategoryOther = "Outros"

// CategoryLabels returns the fixed, ordered bucket labels. Labels render even
// when their count is zero.
func CategoryLabels() []string {
	labels := make([]string, 0, len(categoryGroups)+1)
	for _, g := range categoryGroups {
		labels = append(labels, g.label)
	}
	return append(labels, CategoryOther)
}

// Classify maps an asset to exactly one bucket label by case-insensitive
// keyword matching against its name and type.
func Classify(a domain.Asset) string {
	text := strings.ToLower(a.Name + " " + a.Type)
	for _, g := range categoryGroups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.label
			}
		}
	}
	return CategoryOther
}

// CountByCategory buckets the list for the category chart. All labels are
// present in the result, in declaration order.
func CountByCategory(assets []domain.Asset) map[string]int {
	counts := make(map[string]int, len(categoryGroups)+1)
	for _, label := range CategoryLabels() {
		counts[label] = 0
	}
	for _, a := range assets {
		counts[Classify(a)]++
	}
	return counts
}
