package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/actions"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/export"
	"folio/internal/store"
	"folio/internal/ui"
	"folio/internal/ui/commands"
	"folio/internal/ui/pages"
)

func main() {
	// Parse command line arguments
	var configPath, logPath, exportDir string
	var failureRate float64
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&logPath, "log", "", "Log file (overrides config)")
	flag.StringVar(&exportDir, "export-dir", ".", "Directory for HTML exports")
	flag.Float64Var(&failureRate, "fail-rate", -1, "Probability (0-1) that a background update fails")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		// Use default config
		cfg = config.DefaultConfig()
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if failureRate >= 0 {
		cfg.Mutation.FailureRate = min(failureRate, 1)
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if cfgErr != nil {
		log.Printf("Error loading config: %v", cfgErr)
	}

	// Initialize services
	st := store.NewMemoryStore()
	st.Seed()
	_ = actions.NewActionService(bus, st, actionOptions(cfg)) // subscribes to mutation and reorder requests

	exporter, err := export.NewHTMLExporter()
	if err != nil {
		log.Printf("HTML export disabled: %v", err)
	}

	all := pages.New(st, bus, func(kind domain.Kind) pages.Options {
		return pages.Options{
			Hidden:          cfg.Hidden(kind),
			PageSize:        cfg.UISettings.PageSize,
			MutationTimeout: cfg.Mutation.Timeout.Duration,
			ShowHandles:     cfg.UISettings.ShowDragHandles,
		}
	})

	// Create UI model
	var uiExporter commands.Exporter
	if exporter != nil {
		uiExporter = exporter
	}
	uiModel := ui.NewModel(bus, cfg, all, uiExporter, exportDir)

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Persist preference changes
	var cfgMu sync.Mutex
	savePreferences := func(e eventbus.ConfigChangedEvent) {
		cfgMu.Lock()
		defer cfgMu.Unlock()
		cfg.Apply(e)
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			savePreferences(event)
		}
	})

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventMutationSettled,
		eventbus.EventRecordsChanged,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(ui.QuitMsg(cfg.UISettings.AutosaveOnExit))
		}
	}()

	// Run the UI
	_, runErr := p.Run()
	signal.Stop(sigChan)
	close(sigChan)
	close(done)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}

	// The bus may not have delivered the quit-time preferences yet
	if cfg.UISettings.AutosaveOnExit {
		savePreferences(uiModel.Preferences())
	}
}

// actionOptions tunes the endpoint from the config. Requests give up when
// the UI stops waiting for them.
func actionOptions(cfg *config.Config) actions.Options {
	return actions.Options{
		Latency:     cfg.Mutation.Latency.Duration,
		FailureRate: cfg.Mutation.FailureRate,
		Concurrency: cfg.Mutation.Concurrency,
		Timeout:     cfg.Mutation.Timeout.Duration,
	}
}
