package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/services"
	"github.com/gabiest/hostsdash/pkg/ui"
)

// scanCmd groups the two server-side scans
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Trigger server-side network scans",
	Long: `Trigger a scan on the inventory server.

Two scans are available:
  status    Ping every registered asset and update its Online/Offline status
  network   Discover new devices on the network and register them

Examples:
  hostsdash scan status
  hostsdash scan network`,
}

var scanStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Ping registered assets and update their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan("scan de status", inventoryService.ScanStatus)
	},
}

var scanNetworkCmd = &cobra.Command{
	Use:   "network",
	Short: "Discover new devices on the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan("scan de rede", inventoryService.ScanNetwork)
	},
}

func init() {
	scanCmd.AddCommand(scanStatusCmd)
	scanCmd.AddCommand(scanNetworkCmd)
}

func runScan(label string, run func(ctx context.Context) error) error {
	ctx := getContext()

	fmt.Println(ui.FormatInfo(ui.IconScan + " Iniciando " + label + "..."))

	if err := run(ctx); err != nil {
		if errors.Is(err, services.ErrScanInFlight) {
			fmt.Println(ui.FormatWarning("Escaneamento já em andamento"))
			return nil
		}
		fmt.Println(ui.FormatError("Falha no " + label))
		return err
	}

	summary := services.Summarize(assetStore.Current())
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s concluído: %d ativos, %d online", label, summary.Total, summary.Online)))
	return nil
}
