package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/podreport/internal/adapters/driven/canvas/pdf"
	"github.com/custodia-labs/podreport/internal/adapters/driven/config/file"
	"github.com/custodia-labs/podreport/internal/adapters/driving/cli"
	"github.com/custodia-labs/podreport/internal/core/services"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the services on the PDF backend and the TOML settings file.
func wire(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &cli.Services{
		Report:   services.NewReportService(pdf.NewFactory(), pdf.NewReader(), *settings),
		Settings: settingsService,
	}, nil
}
