package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var (
	listOnline bool
	listSearch string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List inventory assets in a table",
	Aliases: []string{"ls"},
	Long: `List the assets known to the inventory server.

Examples:
  # List everything
  hostsdash list

  # Only assets currently online
  hostsdash list --online

  # Narrow by name, MAC, IP, status or condition
  hostsdash list --search dell
  hostsdash list --search 192.168.0`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listOnline, "online", false, "Show only online assets")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by name, MAC, IP, status or condition")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var assets []domain.Asset
	var err error
	if listOnline {
		assets, err = apiClient.ListOnlineAssets(ctx)
		if err != nil {
			fmt.Println(ui.FormatError("Falha ao listar ativos online"))
			return err
		}
		assetStore.Replace(assets)
	} else {
		if err := inventoryService.Refresh(ctx); err != nil {
			fmt.Println(ui.FormatError("Falha ao listar ativos"))
			return err
		}
		assets = assetStore.Current()
	}

	if listSearch != "" {
		assets = assetStore.Filter(listSearch)
	}

	// Header
	switch {
	case listOnline && listSearch != "":
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Ativos online (filtro: %s)", listSearch)))
	case listOnline:
		fmt.Println(ui.FormatTitle("Ativos online"))
	case listSearch != "":
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Ativos (filtro: %s)", listSearch)))
	default:
		fmt.Println(ui.FormatTitle("Ativos"))
	}
	fmt.Println()

	fmt.Print(ui.NewAssetTable(assets).Render())
	fmt.Println()

	if len(assets) > 0 {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d ativos", len(assets))))
	}

	return nil
}
