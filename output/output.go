/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package output writes generated theme files.
package output

import (
	"errors"
	"path/filepath"
	"strings"

	"bennypowers.dev/vstheme/formatter/vscode"
	"bennypowers.dev/vstheme/fs"
)

// DefaultDir is the directory themes are written to when none is configured.
const DefaultDir = "themes"

// Sentinel errors for the three ways preparing output can fail.
var (
	// ErrCreateDir indicates the output directory could not be created.
	ErrCreateDir = errors.New("failed creating output directory")

	// ErrNotDirectory indicates the output path exists but is not a directory.
	ErrNotDirectory = errors.New("output path exists and is not a directory")

	// ErrWrite indicates the theme file could not be written.
	ErrWrite = errors.New("failed writing theme")
)

// PreparationError reports a failure to create the output directory or
// write a theme file.
type PreparationError struct {
	// Kind is one of ErrCreateDir, ErrNotDirectory, or ErrWrite.
	Kind error
	// Path is the directory or file involved.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *PreparationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(" `")
	sb.WriteString(e.Path)
	sb.WriteString("`")
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Is reports whether target is the error's kind.
func (e *PreparationError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *PreparationError) Unwrap() error {
	return e.Err
}

// PrepareDir makes sure dir exists and is a directory.
func PrepareDir(filesystem fs.FileSystem, dir string) error {
	if !filesystem.Exists(dir) {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return &PreparationError{Kind: ErrCreateDir, Path: dir, Err: err}
		}
		return nil
	}

	info, err := filesystem.Stat(dir)
	if err != nil {
		return &PreparationError{Kind: ErrCreateDir, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &PreparationError{Kind: ErrNotDirectory, Path: dir}
	}
	return nil
}

// Save writes data to <dir>/<name>-color-theme.json, creating dir if needed.
// It returns the path written.
func Save(filesystem fs.FileSystem, dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := PrepareDir(filesystem, dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, vscode.FileName(name))
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return "", &PreparationError{Kind: ErrWrite, Path: path, Err: err}
	}
	return path, nil
}
