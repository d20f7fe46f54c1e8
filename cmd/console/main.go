package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/tradepulse/tradepulse/configs"
	"github.com/tradepulse/tradepulse/internal/adapter"
	"github.com/tradepulse/tradepulse/internal/service"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/tui"
	"github.com/tradepulse/tradepulse/internal/usecase"
	"github.com/tradepulse/tradepulse/internal/view"
	"github.com/tradepulse/tradepulse/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := configs.Load()

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("CONSOLE_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			defer f.Close()
			logOut = f
		}
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: false, Output: logOut})
	logger.SetGlobalLogger(log)

	fund := adapter.NewFundBridge(cfg.Fund.URL, cfg.Fund.RequestTimeout, log)
	store := state.NewStore()
	views := view.NewController()

	syncer := service.NewSynchronizer(fund, store, cfg.Fund.PollInterval, log)
	operator := usecase.NewOperatorService(fund, store, views, syncer, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer.Activate(ctx)
	defer syncer.Deactivate()

	p := tea.NewProgram(tui.NewModel(store, views, operator, syncer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
