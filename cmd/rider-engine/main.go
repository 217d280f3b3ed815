// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rider-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/rider-engine/internal/colour"
	"github.com/pdiddy/rider-engine/internal/convert"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and synced on exit.
var logger = zap.NewNop()

// Config keys, settable in rider-engine.yaml or as RIDER_ENGINE_* variables.
const (
	keyHost             = "host"
	keyProfile          = "profile"
	keyConverter        = "converter"
	keyPdfimagesTimeout = "pdfimages_timeout"
	keyRepositoryBonus  = "repository_bonus"
)

// rootCmd is the base command for the rider-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "rider-engine",
	Short: "Score the quality of technical riders",
	Long: `rider-engine decides whether a document is a technical rider and scores
its quality from 0 to 100 against a fixed set of weighted rules: contact,
version, patch list, sound technician, equipment division and more.

Each score comes with per-rule outcomes, comments and paste-ready
suggestions. PDFs are converted to text with pdftotext or markitdown;
plain-text extractions are scored as-is.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rider-engine.yaml or ~/.config/rider-engine/rider-engine.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every scoring step at debug level")

	viper.SetDefault(keyConverter, convert.BackendPdftotext)
	viper.SetDefault(keyPdfimagesTimeout, colour.DefaultTimeout)
	viper.SetDefault(keyRepositoryBonus, true)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rider-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rider-engine"))
		}
	}

	viper.SetEnvPrefix("RIDER_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pdfimagesTimeout reads the colour probe timeout from config.
func pdfimagesTimeout() time.Duration {
	return viper.GetDuration(keyPdfimagesTimeout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
