package main

import (
	"fmt"
	"os"

	"github.com/vaultline/vaultline-go/adapters/api"
	"github.com/vaultline/vaultline-go/adapters/session"
	"github.com/vaultline/vaultline-go/internal"
	"github.com/vaultline/vaultline-go/internal/cli"
	"github.com/vaultline/vaultline-go/internal/cli/cli_cmds"
	"github.com/vaultline/vaultline-go/services"
)

func main() {
	cfg, log := internal.Init()

	if err := run(cfg, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *internal.Config, logger *internal.Logger) error {
	store, err := session.NewSQLiteStore(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("error opening session store: %w", err)
	}
	defer store.Close()

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.URL,
		Timeout: cfg.API.Timeout,
		Session: store,
		Logger:  logger,
	})

	dashboard := services.NewDashboard(client, logger)

	// Setup the Root Command with access to services
	rootParams := &cli.CmdParams{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Session:   store,
		Dashboard: dashboard,
		Palette:   nil,
		Use:       "vaultline",
		Alias:     "vl",
		Short:     "Vaultline banking client",
		Long:      "Vaultline - Terminal client for your Vaultline bank account: balance, history and transfers",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	if err := rootCmd.Root.Execute(); err != nil {
		return err
	}

	return nil
}
