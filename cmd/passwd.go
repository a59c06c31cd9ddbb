package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/ui"
)

// passwdCmd represents the passwd command
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the logged-in user's password",
	Long: `Change the password of the current session's user.

Requires an active session (see 'hostsdash login'). The current and new
passwords are read from the terminal without echo, and the new password
must be confirmed.`,
	RunE: runPasswd,
}

func runPasswd(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	user, err := authService.CurrentUser()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println(ui.FormatWarning("Nenhuma sessão ativa"))
		fmt.Println(ui.FormatInfo("Faça login com 'hostsdash login'"))
		return nil
	}

	current, err := readPassword("Senha atual: ")
	if err != nil {
		return err
	}
	next, err := readPassword("Nova senha: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirme a nova senha: ")
	if err != nil {
		return err
	}

	if err := authService.ChangePassword(ctx, current, next, confirm); err != nil {
		fmt.Println(ui.FormatError("Falha ao alterar senha"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Senha alterada com sucesso"))
	return nil
}
