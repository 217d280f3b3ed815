// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/rider-engine/internal/convert"
	"github.com/pdiddy/rider-engine/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score one rider",
	Long: `Score evaluates one rider and prints its quality score, rule outcomes,
comments and suggestions. Text files are scored as-is; PDFs are converted
first and also inspected for file size and printable colours.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	addScoringFlags(scoreCmd)
	scoreCmd.Flags().Bool("json", false, "print the full result as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	opts, err := scoringOptions(cmd)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	var conv convert.Converter
	if !isText(path) {
		conv, err = convert.New(ctx, stringSetting(cmd, "converter", keyConverter))
		if err != nil {
			return err
		}
	}
	doc, err := convert.Load(ctx, conv, path)
	if err != nil {
		return err
	}

	res := newEngine(cmd, profile).Score(ctx, doc, opts)
	logger.Info("scored", zap.String("input", path), zap.Int("score", res.Score))

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printResult(cmd.OutOrStdout(), path, res)
	return nil
}

// printResult writes a human-readable summary of res.
func printResult(w io.Writer, path string, res types.ScoreResult) {
	fmt.Fprintf(w, "%s: score %d (%s, confidence %d)\n", path, res.Score, res.Meta.DocType, res.Meta.RiderConfidence)
	if res.Meta.OCRRecommended {
		fmt.Fprintln(w, "OCR recommended: the text layer looks thin.")
	}

	fmt.Fprintln(w, "\nRules:")
	for _, name := range types.RuleOrder {
		v, ok := res.Rules[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-24s %-5s %3d\n", name, v, res.Partials[name])
	}
	if len(res.Meta.Adjustments) > 0 {
		fmt.Fprintf(w, "\nAdjustments: %v\n", res.Meta.Adjustments)
	}

	if len(res.Comments) > 0 {
		fmt.Fprintln(w, "\nComments:")
		for _, c := range res.Comments {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
	if res.SuggestionBlock != "" {
		fmt.Fprintf(w, "\nSuggestions:\n%s\n", res.SuggestionBlock)
	}
	if res.SuggestionBlockCompact != nil {
		fmt.Fprintf(w, "\nTemplate:\n%s\n", *res.SuggestionBlockCompact)
	}
}
