package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/pkg/config"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the hostsdash configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		// First run: write the defaults so the user edits a real file
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := appConfig.Save(path); err != nil {
				return err
			}
			fmt.Println(ui.FormatInfo("Arquivo de configuração criado"))
		}

		fmt.Println(ui.FormatInfo("Abrindo configuração: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
