/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for vstheme.
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/vstheme/cmd/generate"
	"bennypowers.dev/vstheme/cmd/inspect"
	"bennypowers.dev/vstheme/cmd/version"
	"bennypowers.dev/vstheme/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vstheme",
	Short: "Generate VS Code color themes from definitions",
	Long: `vstheme builds VS Code color themes from YAML or JSONC definitions.

Rules target TextMate scopes, semantic token selectors, or both, and the
generated files are written in a stable order so they diff cleanly.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("schema", "s", "", "Output schema revision (current, legacy)")
	flags.BoolP("quiet", "q", false, "Only output errors")
	flags.BoolP("verbose", "v", false, "Print debug output")

	for _, name := range []string{"schema", "quiet", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("VSTHEME")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
