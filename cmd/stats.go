package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/services"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show inventory statistics",
	Long: `Fetch and display inventory statistics.

Includes:
  - Total, online and offline asset counts
  - Availability percentage
  - Assets per type as reported by the server
  - Assets per category bucket`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	stats, err := apiClient.Stats(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Falha ao carregar estatísticas"))
		return err
	}

	if err := inventoryService.Refresh(ctx); err != nil {
		fmt.Println(ui.FormatError("Falha ao carregar ativos"))
		return err
	}
	assets := assetStore.Current()

	fmt.Println()
	fmt.Println(ui.FormatTitle("Estatísticas do Inventário"))
	fmt.Println()

	// --- General stats (tabular) ---
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total de Ativos:"), stats.TotalAssets)
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Online:"), ui.StyleSuccess.Render(fmt.Sprintf("%d", stats.OnlineAssets)))
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Offline:"), ui.StyleError.Render(fmt.Sprintf("%d", stats.OfflineAssets)))
	fmt.Fprintf(w, "%s\t%.1f%%\n", ui.StyleBold.Render("Disponibilidade:"), stats.Availability())
	if stats.TotalUsers > 0 {
		fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Usuários:"), stats.TotalUsers)
	}
	w.Flush()

	fmt.Println()

	// --- Per-type counts from the server ---
	typeCounts, err := apiClient.TypeCounts(ctx)
	if err == nil && len(typeCounts) > 0 {
		pairs := make([]countPair, 0, len(typeCounts))
		for _, tc := range typeCounts {
			pairs = append(pairs, countPair{Name: tc.Type, Count: tc.Count})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return pairs[i].Count > pairs[j].Count
		})

		fmt.Println(ui.StyleHeader.Render("Ativos por Tipo"))
		renderCountBars(pairs)
		fmt.Println()
	}

	// --- Category buckets derived from the asset list ---
	fmt.Println(ui.StyleHeader.Render("Ativos por Categoria"))
	counts := services.CountByCategory(assets)
	pairs := make([]countPair, 0, len(counts))
	for _, label := range services.CategoryLabels() {
		pairs = append(pairs, countPair{Name: label, Count: counts[label]})
	}
	renderCountBars(pairs)

	return nil
}

type countPair struct {
	Name  string
	Count int
}

// renderCountBars displays a horizontal bar chart
func renderCountBars(pairs []countPair) {
	if len(pairs) == 0 {
		return
	}

	max := 0
	for _, p := range pairs {
		if p.Count > max {
			max = p.Count
		}
	}

	barWidth := 20
	for _, p := range pairs {
		fmt.Printf("%s %-15s %s\n",
			ui.RenderBar(p.Count, max, barWidth, ui.StyleAccent),
			p.Name,
			ui.StyleMuted.Render(fmt.Sprintf("%d", p.Count)),
		)
	}
}
