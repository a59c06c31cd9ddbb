package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/services"
)

// Dashboard builds the exportable HTML page: the status donut and the
// category bar chart, derived from one asset list.
type Dashboard struct {
	page *components.Page
}

// NewDashboard aggregates the asset list and lays out both charts.
func NewDashboard(assets []domain.Asset) *Dashboard {
	summary := services.Summarize(assets)
	counts := services.CountByCategory(assets)

	page := components.NewPage()
	page.SetPageTitle("Hosts — Dashboard")
	page.AddCharts(statusDonut(summary), categoryBar(counts))

	return &Dashboard{page: page}
}

// Render writes the HTML page to w.
func (d *Dashboard) Render(w io.Writer) error {
	if err := d.page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

// WriteFile renders the page into the given path.
func (d *Dashboard) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	return d.Render(f)
}

func statusDonut(s services.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Status dos Ativos",
			Subtitle: fmt.Sprintf("Disponibilidade: %.1f%%", s.Availability()),
		}),
	)

	data := []opts.PieData{
		{Name: "Online", Value: s.Online},
		{Name: "Offline", Value: s.Offline},
		{Name: "Manutenção", Value: s.Maintenance},
	}

	pie.AddSeries("status", data).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}))

	return pie
}

func categoryBar(counts map[string]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "Ativos por Categoria"}),
	)

	// Fixed labels in declaration order, zero counts included
	labels := services.CategoryLabels()
	data := make([]opts.BarData, 0, len(labels))
	for _, label := range labels {
		data = append(data, opts.BarData{Value: counts[label]})
	}

	bar.SetXAxis(labels).AddSeries("Quantidade", data)
	return bar
}
