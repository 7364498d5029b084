/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for vstheme.
package generate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/vstheme/config"
	"bennypowers.dev/vstheme/definition"
	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/formatter/vscode"
	"bennypowers.dev/vstheme/fs"
	"bennypowers.dev/vstheme/internal/logger"
	"bennypowers.dev/vstheme/output"
	"bennypowers.dev/vstheme/schema"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [definitions...]",
	Short: "Generate VS Code color theme files",
	Long: `Generate one <name>-color-theme.json file per theme definition.

Definitions are YAML or JSONC documents. With no arguments, the
definitions listed in .config/vstheme.{yaml,yml,json} are used.

Examples:
  # Generate every theme listed in the config file
  vstheme generate

  # Generate one theme into dist/
  vstheme generate --out-dir dist themes/src/dark.yaml

  # Print a theme with six-digit colors where they are opaque
  vstheme generate --stdout --schema legacy themes/src/dark.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("out-dir", "o", "", "Output directory (default: themes)")
	Cmd.Flags().Bool("stdout", false, "Write themes to stdout instead of files")
	Cmd.Flags().String("indent", "", "Indentation per level (default: four spaces)")
}

// Options configures a generate run.
type Options struct {
	Format formatter.Options
	// OutDir overrides every definition's output directory when set.
	OutDir string
	// Stdout receives the themes instead of the filesystem when non-nil.
	Stdout io.Writer
}

func run(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	indent, _ := cmd.Flags().GetString("indent")

	filesystem := fs.NewOSFileSystem()
	cfg, err := loadConfig(filesystem, ".")
	if err != nil {
		return err
	}

	if s := viper.GetString("schema"); s != "" {
		if _, err := schema.FromString(s); err != nil {
			return fmt.Errorf("invalid schema version: %s", s)
		}
		cfg.Schema = s
	}
	if indent != "" {
		cfg.Indent = indent
	}

	specs, err := definitions(filesystem, cfg, args)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("no definitions specified and none found in config")
	}

	opts := Options{Format: cfg.FormatOptions(), OutDir: outDir}
	if toStdout {
		opts.Stdout = cmd.OutOrStdout()
	}
	return Run(filesystem, specs, opts)
}

// loadConfig reads the project config under root, falling back to the
// defaults when there is none. A config that fails to load is an error.
func loadConfig(filesystem fs.FileSystem, root string) (*config.Config, error) {
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// definitions returns the command-line definitions, or the configured ones
// when there are no arguments.
func definitions(filesystem fs.FileSystem, cfg *config.Config, args []string) ([]config.DefinitionSpec, error) {
	if len(args) == 0 {
		specs, err := cfg.ResolveDefinitions(filesystem, ".")
		if err != nil {
			return nil, fmt.Errorf("error expanding config definitions: %w", err)
		}
		return specs, nil
	}

	specs := make([]config.DefinitionSpec, 0, len(args))
	for _, arg := range args {
		specs = append(specs, config.DefinitionSpec{Path: arg, OutDir: cfg.OutDirFor(arg)})
	}
	return specs, nil
}

// Run generates every definition in specs. A failing definition is
// reported and skipped; Run returns an error if any failed.
func Run(filesystem fs.FileSystem, specs []config.DefinitionSpec, opts Options) error {
	var errs []error
	for _, spec := range specs {
		if err := generateOne(filesystem, spec, opts); err != nil {
			logger.Warn("%v", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d definitions failed: %w", len(errs), len(specs), errors.Join(errs...))
	}
	return nil
}

func generateOne(filesystem fs.FileSystem, spec config.DefinitionSpec, opts Options) error {
	logger.Debug("reading %s", spec.Path)
	doc, err := definition.LoadFile(filesystem, spec.Path)
	if err != nil {
		return err
	}

	th, err := doc.Build()
	if err != nil {
		return err
	}

	data, err := vscode.New().Format(th, opts.Format)
	if err != nil {
		return fmt.Errorf("%s: error formatting theme: %w", spec.Path, err)
	}

	if opts.Stdout != nil {
		_, err := opts.Stdout.Write(data)
		return err
	}

	dir := spec.OutDir
	if opts.OutDir != "" {
		dir = opts.OutDir
	}
	path, err := output.Save(filesystem, dir, th.Name(), data)
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Path, err)
	}
	logger.Info("Wrote %s", path)
	return nil
}
