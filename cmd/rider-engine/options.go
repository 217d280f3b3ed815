// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/rider-engine/internal/colour"
	"github.com/pdiddy/rider-engine/internal/score"
	"github.com/pdiddy/rider-engine/internal/trace"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// dateLayout is the layout of the --now flag.
const dateLayout = "2006-01-02"

// addScoringFlags registers the flags shared by score and batch.
func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().String("ref", "", "rider identifier used in suggestion links")
	cmd.Flags().String("host", "", "portal hostname used in suggestion links (default from config)")
	cmd.Flags().String("version-label", "", "version proposed in the compact suggestion (default v1.0)")
	cmd.Flags().Bool("no-repository-bonus", false, "leave the repository-link rule out of scoring")
	cmd.Flags().String("profile", "", "scoring profile YAML (default from config, else built-in)")
	cmd.Flags().String("converter", "", "PDF converter: pdftotext or markitdown (default from config)")
	cmd.Flags().String("now", "", `reference date YYYY-MM-DD for recency checks (default today, "none" disables recency)`)
	cmd.Flags().Bool("parallel", false, "run text detectors concurrently")
}

// stringSetting returns the flag value, falling back to the config key.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// parseNow reads the reference date. Empty means today, "none" the zero
// time.
func parseNow(s string, today time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		y, m, d := today.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case "none":
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want YYYY-MM-DD or none", s)
	}
	return t, nil
}

// scoringOptions builds the per-call options from flags and config.
func scoringOptions(cmd *cobra.Command) (types.Options, error) {
	nowFlag, _ := cmd.Flags().GetString("now")
	now, err := parseNow(nowFlag, time.Now())
	if err != nil {
		return types.Options{}, err
	}
	ref, _ := cmd.Flags().GetString("ref")
	label, _ := cmd.Flags().GetString("version-label")
	noRepo, _ := cmd.Flags().GetBool("no-repository-bonus")

	return types.Options{
		Ref:                   ref,
		Host:                  stringSetting(cmd, "host", keyHost),
		VersionLabel:          label,
		DisableRepositoryLink: noRepo || !viper.GetBool(keyRepositoryBonus),
		Now:                   now,
	}, nil
}

// loadProfile returns the configured profile or the built-in default.
func loadProfile(cmd *cobra.Command) (types.Profile, error) {
	path := stringSetting(cmd, "profile", keyProfile)
	if path == "" {
		return types.DefaultProfile(), nil
	}
	logger.Debug("loading profile", zap.String("path", path))
	return score.LoadProfile(path)
}

// newEngine builds the scoring engine for a command.
func newEngine(cmd *cobra.Command, profile types.Profile) *score.Engine {
	parallel, _ := cmd.Flags().GetBool("parallel")
	return score.NewEngine(
		score.WithProfile(profile),
		score.WithObserver(trace.NewZapObserver(logger)),
		score.WithColourChecker(colour.NewProbe(colour.WithTimeout(pdfimagesTimeout()))),
		score.WithParallelDetectors(parallel),
	)
}
