package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var (
	addMAC       string
	addIP        string
	addType      string
	addStatus    string
	addCondition string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <nome>",
	Short: "Register a new asset",
	Long: `Register a new asset in the inventory.

Only the name is required; every other field can be filled in later
from the dashboard or with 'hostsdash edit'.

Examples:
  hostsdash add "Notebook Dell Latitude"
  hostsdash add "Impressora HP" --ip 192.168.0.40 --type Impressora
  hostsdash add "Servidor SQL" --mac AA:BB:CC:00:11:22 --condicao Alocado`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addMAC, "mac", "", "MAC address")
	addCmd.Flags().StringVar(&addIP, "ip", "", "IP address")
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "Asset type (Notebook, Impressora, Servidor...)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "Initial status (Online/Offline)")
	addCmd.Flags().StringVar(&addCondition, "condicao", "", "Condition (Disponível, Manutenção, Alocado...)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	asset := domain.Asset{
		Name:       args[0],
		MACAddress: addMAC,
		IPAddress:  addIP,
		Type:       addType,
		Status:     addStatus,
		Condition:  addCondition,
	}

	result, err := inventoryService.Save(ctx, asset)
	if err != nil {
		fmt.Println(ui.FormatError("Falha ao cadastrar ativo"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Ativo cadastrado: %s (id %d)", result.Asset.DisplayName(), result.Asset.ID)))
	return nil
}
