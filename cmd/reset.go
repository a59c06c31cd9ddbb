package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/ui"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the entire inventory",
	Long: `Delete every asset from the inventory server.

This is irreversible. The command asks you to type the confirmation
phrase before anything is sent to the server.`,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	fmt.Println(ui.FormatWarning("Isto excluirá TODOS os ativos do inventário."))
	fmt.Print(ui.StyleError.Render("Digite 'apagar tudo' para confirmar: "))

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(response) != "apagar tudo" {
		fmt.Println("Cancelado.")
		return nil
	}

	if err := inventoryService.Reset(ctx); err != nil {
		fmt.Println(ui.FormatError("Falha ao resetar inventário"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Inventário resetado"))
	return nil
}
