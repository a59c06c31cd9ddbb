package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/ui"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := authService.CurrentUser()
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println(ui.FormatInfo("Nenhuma sessão ativa"))
			return nil
		}

		if err := authService.Logout(); err != nil {
			fmt.Println(ui.FormatError("Falha ao encerrar sessão"))
			return err
		}

		fmt.Println(ui.FormatSuccess("Sessão encerrada: " + user.Name))
		return nil
	},
}
