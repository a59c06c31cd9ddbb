package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gabiest/hostsdash/pkg/ui"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Authenticate against the inventory server",
	Long: `Authenticate and store the session locally.

The password is read from the terminal without echo.

Examples:
  hostsdash login
  hostsdash login admin@empresa.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print(ui.StyleInfo.Render("Email: "))
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(input)
	}

	password, err := readPassword("Senha: ")
	if err != nil {
		return err
	}

	user, err := authService.Login(ctx, email, password)
	if err != nil {
		fmt.Println(ui.FormatError("Falha no login"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Bem-vindo, " + user.Name))
	return nil
}

// readPassword prompts without echoing the input.
func readPassword(prompt string) (string, error) {
	fmt.Print(ui.StyleInfo.Render(prompt))
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(data), nil
}
