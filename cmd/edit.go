package cmd

import (
	"context"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var (
	editName      string
	editMAC       string
	editIP        string
	editType      string
	editStatus    string
	editCondition string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [query]",
	Short: "Edit an existing asset",
	Long: `Edit an asset's fields.

With no query the asset is picked interactively with a fuzzy finder.
Only the flags you pass are changed; everything else keeps its value.

Examples:
  hostsdash edit
  hostsdash edit dell --status Offline
  hostsdash edit "servidor sql" --condicao Manutenção --ip 10.0.0.12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "nome", "", "New name")
	editCmd.Flags().StringVar(&editMAC, "mac", "", "New MAC address")
	editCmd.Flags().StringVar(&editIP, "ip", "", "New IP address")
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "New asset type")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status (Online/Offline)")
	editCmd.Flags().StringVar(&editCondition, "condicao", "", "New condition")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	if cmd.Flags().Changed("nome") {
		asset.Name = editName
	}
	if cmd.Flags().Changed("mac") {
		asset.MACAddress = editMAC
	}
	if cmd.Flags().Changed("ip") {
		asset.IPAddress = editIP
	}
	if cmd.Flags().Changed("type") {
		asset.Type = editType
	}
	if cmd.Flags().Changed("status") {
		asset.Status = editStatus
	}
	if cmd.Flags().Changed("condicao") {
		asset.Condition = editCondition
	}

	result, err := inventoryService.Save(ctx, *asset)
	if err != nil {
		fmt.Println(ui.FormatError("Falha ao atualizar ativo"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Ativo atualizado: " + result.Asset.DisplayName()))
	return nil
}

// selectAsset loads the inventory and resolves a query to a single asset. An
// empty query or multiple matches opens the fuzzy finder; nil without error
// means the user cancelled or nothing matched.
func selectAsset(ctx context.Context, query string) (*domain.Asset, error) {
	if err := inventoryService.Refresh(ctx); err != nil {
		fmt.Println(ui.FormatError("Falha ao carregar ativos"))
		return nil, err
	}

	matches := assetStore.Filter(query)
	if len(matches) == 0 {
		if query != "" {
			fmt.Println(ui.FormatWarning("Nenhum ativo encontrado para: " + query))
		} else {
			fmt.Println(ui.FormatWarning(ui.EmptyTablePlaceholder))
		}
		return nil, nil
	}

	if len(matches) == 1 {
		return &matches[0], nil
	}

	idx, err := fuzzyfinder.Find(
		matches,
		func(i int) string {
			return matches[i].DisplayName()
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			a := matches[i]
			return fmt.Sprintf("Nome: %s\nMAC: %s\nIP: %s\nStatus: %s\nCondição: %s\nTipo: %s",
				a.DisplayName(),
				a.DisplayMAC(),
				a.DisplayIP(),
				a.DisplayStatus(),
				a.DisplayCondition(),
				a.Type)
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operação cancelada."))
		return nil, nil
	}
	return &matches[idx], nil
}
