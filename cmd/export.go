package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/charts"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard charts to an HTML file",
	Long: `Render the status donut and category bar chart into a standalone
HTML page that can be opened in any browser or shared.

Examples:
  hostsdash export
  hostsdash export -o relatorio.html`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if err := inventoryService.Refresh(ctx); err != nil {
		fmt.Println(ui.FormatError("Falha ao carregar ativos"))
		return err
	}

	out := exportOutput
	if out == "" {
		out = appConfig.ExportFile
	}

	dash := charts.NewDashboard(assetStore.Current())
	if err := dash.WriteFile(out); err != nil {
		fmt.Println(ui.FormatError("Falha ao exportar gráficos"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Dashboard exportado para " + out))
	return nil
}
