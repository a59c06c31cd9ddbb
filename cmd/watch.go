package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/services"
	"github.com/gabiest/hostsdash/pkg/config"
	"github.com/gabiest/hostsdash/pkg/ui"
)

var watchQuiet bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the server and log status transitions",
	Long: `Run in the foreground, polling the inventory server on the configured
interval and printing every asset that changes between Online and Offline.

Edits to the config file are picked up live; changing the poll interval
restarts the poller without restarting the command.

Use --quiet to log only transitions, suppressing per-tick summaries.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Log only status transitions")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// First load before the poller starts ticking
	if err := inventoryService.Refresh(ctx); err != nil {
		fmt.Println(ui.FormatWarning("Servidor indisponível, aguardando: " + err.Error()))
	}
	previous := statusIndex(assetStore.Current())

	if !watchQuiet {
		fmt.Println(ui.FormatInfo(fmt.Sprintf("Monitorando %s a cada %ds", appConfig.ServerURL, appConfig.PollIntervalSeconds)))
		fmt.Println(ui.FormatMuted("Pressione Ctrl+C para parar"))
		fmt.Println()
	}

	newPoller := func(interval time.Duration) *services.Poller {
		p := services.NewPoller(inventoryService, interval)
		p.OnUpdate = func(assets []domain.Asset) {
			current := statusIndex(assets)
			logTransitions(previous, current)
			previous = current

			if !watchQuiet {
				summary := services.Summarize(assets)
				fmt.Println(ui.FormatMuted(fmt.Sprintf("[%s] %d ativos, %d online, %d offline",
					time.Now().Format("15:04:05"), summary.Total, summary.Online, summary.Offline)))
			}
		}
		p.OnError = func(err error) {
			fmt.Println(ui.FormatError("Falha na atualização: " + err.Error()))
		}
		return p
	}

	poller := newPoller(pollInterval())
	poller.Start(ctx)
	defer poller.Stop()

	// Live config reload; an interval change swaps the poller
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	stopWatch, err := config.Watch(path, func(cfg *config.Config) {
		if cfg.PollIntervalSeconds == appConfig.PollIntervalSeconds {
			appConfig = cfg
			return
		}
		appConfig = cfg
		poller.Stop()
		poller = newPoller(pollInterval())
		poller.Start(ctx)
		if !watchQuiet {
			fmt.Println(ui.FormatInfo(fmt.Sprintf("Configuração recarregada, novo intervalo: %ds", cfg.PollIntervalSeconds)))
		}
	})
	if err == nil {
		defer stopWatch()
	}

	// Block until interrupted
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if !watchQuiet {
		fmt.Println()
		fmt.Println(ui.FormatMuted("Monitoramento encerrado"))
	}
	return nil
}

func statusIndex(assets []domain.Asset) map[int]domain.Asset {
	idx := make(map[int]domain.Asset, len(assets))
	for _, a := range assets {
		idx[a.ID] = a
	}
	return idx
}

func logTransitions(previous, current map[int]domain.Asset) {
	now := time.Now().Format("15:04:05")

	for id, cur := range current {
		prev, seen := previous[id]
		switch {
		case !seen:
			fmt.Printf("[%s] %s %s\n", now, ui.StyleInfo.Render("NOVO"), cur.DisplayName())
		case prev.Status != cur.Status && cur.Online():
			fmt.Printf("[%s] %s %s (%s)\n", now, ui.StyleSuccess.Render("ONLINE"), cur.DisplayName(), cur.DisplayIP())
		case prev.Status != cur.Status:
			fmt.Printf("[%s] %s %s (%s)\n", now, ui.StyleError.Render("OFFLINE"), cur.DisplayName(), cur.DisplayIP())
		}
	}

	for id, prev := range previous {
		if _, ok := current[id]; !ok {
			fmt.Printf("[%s] %s %s\n", now, ui.StyleWarning.Render("REMOVIDO"), prev.DisplayName())
		}
	}
}
