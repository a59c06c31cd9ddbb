package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/ui"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [query]",
	Short: "Delete an asset (with confirmation)",
	Long: `Delete an asset from the inventory.

With no query the asset is picked interactively with a fuzzy finder.
Deletion always asks for confirmation unless --yes is passed.

Examples:
  hostsdash delete
  hostsdash delete "impressora antiga"
  hostsdash delete srv-backup --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	asset, err := selectAsset(ctx, query)
	if err != nil {
		return err
	}
	if asset == nil {
		return nil
	}

	if !deleteYes {
		fmt.Println(ui.FormatWarning("Você está prestes a excluir:"))
		fmt.Printf("  %s %s\n",
			ui.StyleBold.Render(asset.DisplayName()),
			ui.StyleMuted.Render(fmt.Sprintf("(id %d, %s)", asset.ID, asset.DisplayIP())))
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		fmt.Print(ui.StyleError.Render("Excluir ativo? (y/n): "))
		response, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Cancelado.")
			return nil
		}
	}

	if err := inventoryService.Delete(ctx, asset.ID); err != nil {
		fmt.Println(ui.FormatError("Falha ao excluir ativo"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Ativo excluído: " + asset.DisplayName()))
	return nil
}
