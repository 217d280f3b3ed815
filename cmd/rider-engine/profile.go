// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the scoring profile as YAML",
	Long: `Profile prints the scoring profile in effect: the built-in calibrated
defaults, or the file named by --profile or the profile config key. The
output is a valid profile file to start tuning from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(p)
	},
}

func init() {
	profileCmd.Flags().String("profile", "", "scoring profile YAML to print instead of the default")

	rootCmd.AddCommand(profileCmd)
}
