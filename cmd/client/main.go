package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/internal/client"
	"todolist/internal/tui"
	"todolist/shared/logger"
)

func main() {
	cfg := config.Get()

	// the program owns the terminal, so logs go to a file
	closer, err := logger.InitFileLogger(cfg.Client.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.SetLogLevel(cfg)

	todoClient := client.New(cfg)
	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second

	program := tea.NewProgram(tui.New(todoClient, timeout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("Client exited with error")
		closer.Close()
		os.Exit(1)
	}
}
