package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/adapters/rest"
	"github.com/gabiest/hostsdash/internal/adapters/session"
	"github.com/gabiest/hostsdash/internal/core/services"
	"github.com/gabiest/hostsdash/pkg/config"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var (
	// Loaded configuration
	appConfig *config.Config

	// Adapters
	apiClient    *rest.Client
	sessionStore *session.FileStore

	// Services
	assetStore       *services.Store
	inventoryService *services.InventoryService
	authService      *services.AuthService

	// Flags
	configPath string
	serverFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hostsdash",
	Short: "hostsdash - Terminal dashboard for the Hosts inventory",
	Long: ui.StyleTitle.Render("hostsdash") + " - Hosts Inventory Dashboard\n\n" +
		"A terminal client for the Hosts IT asset inventory API.\n" +
		"Browse, edit and monitor network assets without leaving the shell.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "inventory server URL (overrides config)")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	// Initialize adapters
	apiClient = rest.NewClient(cfg.ServerURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	sessionStore = session.NewFileStore(cfg.SessionDir)

	// Initialize services
	assetStore = services.NewStore()
	inventoryService = services.NewInventoryService(apiClient, assetStore)
	authService = services.NewAuthService(apiClient, sessionStore)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
