/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package inspect provides the inspect command for vstheme.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/vstheme/cmd/render"
	"bennypowers.dev/vstheme/definition"
	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/fs"
	"bennypowers.dev/vstheme/schema"
)

// Cmd is the inspect cobra command.
var Cmd = &cobra.Command{
	Use:   "inspect <definition>",
	Short: "Show the rules a definition produces",
	Long: `Build a theme definition and list its rules without writing a file.

TextMate rules, semantic rules, and workbench colors are listed in the
order they will appear in the generated theme. Font style axes that are
explicitly turned off are prefixed with "!".`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown")
	Cmd.Flags().Bool("no-swatches", false, "Do not print ANSI color swatches")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	noSwatches, _ := cmd.Flags().GetBool("no-swatches")

	var opts formatter.Options
	if s := viper.GetString("schema"); s != "" {
		v, err := schema.FromString(s)
		if err != nil {
			return fmt.Errorf("invalid schema version: %s", s)
		}
		opts.Schema = v
	}

	swatches := !noSwatches && isTerminal(cmd.OutOrStdout())
	return Inspect(fs.NewOSFileSystem(), args[0], format, opts, swatches, cmd.OutOrStdout())
}

// Inspect builds the definition at path and renders its rules to w.
func Inspect(filesystem fs.FileSystem, path, format string, opts formatter.Options, swatches bool, w io.Writer) error {
	doc, err := definition.LoadFile(filesystem, path)
	if err != nil {
		return err
	}
	th, err := doc.Build()
	if err != nil {
		return err
	}

	rows := render.ComputeRows(th, opts)
	switch format {
	case "markdown", "md":
		return render.Markdown(w, th.Name(), rows)
	case "table":
		fmt.Fprintf(w, "%s (%d rules)\n\n", th.Name(), len(rows))
		return render.Table(w, rows, swatches)
	default:
		return fmt.Errorf("unknown format %q: expected table or markdown", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
