// Command papyrus converts word processing documents to plain text.
package main

import (
	"fmt"
	"os"

	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driven/config/file"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driven/output"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driven/storage/sqlite"
	"github.com/papyrus-labs/papyrus-cli/internal/adapters/driving/cli"
	"github.com/papyrus-labs/papyrus-cli/internal/converters/docxtxt"
	"github.com/papyrus-labs/papyrus-cli/internal/core/services"
	"github.com/papyrus-labs/papyrus-cli/internal/i18n"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

func main() {
	os.Exit(run())
}

// run wires the adapters to the core services and hands control to the CLI.
func run() int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initialising config store: %v\n", err)
		return 1
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initialising history store: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing history store: %v", err)
		}
	}()

	bundle, err := i18n.NewBundle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading locale resources: %v\n", err)
		return 1
	}

	registry := services.NewConverterRegistry()
	registry.Register(docxtxt.New(bundle))

	settingsService := services.NewSettingsService(configStore)
	historyService := services.NewHistoryService(store.HistoryStore())
	convertService := services.NewConvertService(
		registry,
		output.NewStore(),
		store.HistoryStore(),
		settingsService,
	)

	cli.SetServices(convertService, settingsService, historyService)
	return cli.Execute()
}
