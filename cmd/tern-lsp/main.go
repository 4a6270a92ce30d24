// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"
	"tern/internal/config"
	"tern/internal/lsp"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "tern-lsp",
	Short:        "tern language server over stdio",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./tern.toml or ./tern.yaml when present)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Resolve(cfgFile, wd)
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to stderr or the configured file
	var logFile *string
	if cfg.LogFile != "" {
		logFile = &cfg.LogFile
	}
	commonlog.Configure(cfg.LogVerbosity, logFile)
	log := commonlog.GetLogger("tern.lsp")

	handler := lsp.NewTernHandler()
	s := server.NewServer(handler.Handler(), lsp.Name, cfg.LogVerbosity > 1)

	log.Infof("starting %s language server %s", lsp.Name, lsp.Version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running language server: %s", err)
		return err
	}
	return nil
}
