// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/rider-engine/internal/batch"
	"github.com/pdiddy/rider-engine/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every rider in a directory",
	Long: `Batch scores every .txt and .pdf file in a directory and writes a
<name>-score.yaml report for each. Inputs whose report is newer than the
input are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	addScoringFlags(batchCmd)
	batchCmd.Flags().String("out", "", "report directory (default: the input directory)")
	batchCmd.Flags().Int("jobs", batch.DefaultLimit, "inputs scored concurrently")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]

	paths, err := batch.Collect(dir)
	if err != nil {
		return err
	}
	opts, err := scoringOptions(cmd)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	// Without a working converter PDFs fail individually; text inputs
	// still score.
	var conv convert.Converter
	if hasPDF(paths) {
		conv, err = convert.New(ctx, stringSetting(cmd, "converter", keyConverter))
		if err != nil {
			logger.Warn("no PDF converter", zap.Error(err))
		}
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = dir
	}
	jobs, _ := cmd.Flags().GetInt("jobs")

	r := &batch.Runner{
		Scorer:    newEngine(cmd, profile),
		Converter: conv,
		Options:   opts,
		Profile:   profile.Version,
		OutDir:    out,
		Limit:     jobs,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	}
	result := r.Run(ctx, paths)
	if result.HasFailures() {
		return fmt.Errorf("%d rider(s) failed scoring", result.Failed)
	}
	return nil
}

func isText(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

func hasPDF(paths []string) bool {
	for _, p := range paths {
		if !isText(p) {
			return true
		}
	}
	return false
}
