/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	vsfs "bennypowers.dev/vstheme/fs"
	"bennypowers.dev/vstheme/schema"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "vstheme"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/vstheme.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error). An unrecognized schema
// value fails with an error wrapping schema.ErrUnknownVersion.
func Load(filesystem vsfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		if _, err := schema.FromString(cfg.Schema); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem vsfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandDefinitions expands glob patterns in Definitions and returns
// matching paths, keeping the order of the specs.
func (c *Config) ExpandDefinitions(filesystem vsfs.FileSystem, rootDir string) ([]string, error) {
	resolved, err := c.ResolveDefinitions(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(resolved))
	for _, spec := range resolved {
		paths = append(paths, spec.Path)
	}
	return paths, nil
}

// ResolveDefinitions expands every spec into one entry per matching file.
// Paths and output directories are made absolute against rootDir, and each
// entry carries the output directory OutDirFor chose for its spec.
func (c *Config) ResolveDefinitions(filesystem vsfs.FileSystem, rootDir string) ([]DefinitionSpec, error) {
	var result []DefinitionSpec

	for _, spec := range c.Definitions {
		expanded, err := expandFilePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		outDir := c.OutDirFor(spec.Path)
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(rootDir, outDir)
		}
		for _, path := range expanded {
			result = append(result, DefinitionSpec{Path: path, OutDir: outDir})
		}
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem vsfs.FileSystem, rootDir, pattern string) ([]string, error) {
	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem vsfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
