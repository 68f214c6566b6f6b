package main

import (
	"fmt"
	"os"

	"github.com/emzola/sdmagic/config"
	"github.com/emzola/sdmagic/internal/jsonlog"
	"github.com/spf13/cobra"
)

// @title  SD Magic API
// @version 1.0.0
// @description Prompt library service for image-generation prompts, categories and templates.
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "sdmagic",
		Short:         "Prompt library service",
		Long:          `sdmagic serves the SD Magic prompt manager: a JSON API for prompt categories, prompts and templates, plus the web front end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultPath := os.Getenv("SDMAGIC_CONFIG")
	if defaultPath == "" {
		defaultPath = "config.yaml"
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultPath, "path to the YAML config file (optional)")

	cmd.AddCommand(serveCmd(opts))
	cmd.AddCommand(migrateCmd(opts))
	cmd.AddCommand(hashPasswordCmd())
	return cmd
}

// load decodes the configuration and builds the logger it asks for.
func (o *options) load() (config.Config, *jsonlog.Logger, error) {
	cfg, err := config.Decode(o.configPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	level, err := jsonlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, jsonlog.New(os.Stdout, level), nil
}
