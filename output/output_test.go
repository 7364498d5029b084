/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package output_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/vstheme/internal/mapfs"
	"bennypowers.dev/vstheme/output"
)

func TestSave_CreatesDirectory(t *testing.T) {
	mfs := mapfs.New()

	path, err := output.Save(mfs, "", "Foo", []byte("data"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != "themes/Foo-color-theme.json" {
		t.Errorf("Save() path = %q", path)
	}

	content, err := mfs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "data" {
		t.Errorf("content = %q, want %q", content, "data")
	}
}

func TestSave_ExistingDirectory(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out/Foo-color-theme.json", "old", 0644)

	path, err := output.Save(mfs, "/out", "Foo", []byte("new"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, _ := mfs.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("expected file to be overwritten, got %q", content)
	}
}

func TestSave_PathIsAFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/themes", "not a dir", 0644)

	_, err := output.Save(mfs, "/project/themes", "Foo", []byte("data"))
	if !errors.Is(err, output.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
	if errors.Is(err, output.ErrCreateDir) || errors.Is(err, output.ErrWrite) {
		t.Error("error matched more than one kind")
	}
	if !strings.Contains(err.Error(), "`/project/themes`") {
		t.Errorf("error should name the path, got %q", err.Error())
	}
}

func TestSave_CreateDirFails(t *testing.T) {
	mfs := mapfs.New()
	cause := errors.New("permission denied")
	mfs.FailOn("mkdir", "/readonly/themes", cause)

	_, err := output.Save(mfs, "/readonly/themes", "Foo", []byte("data"))
	if !errors.Is(err, output.ErrCreateDir) {
		t.Fatalf("expected ErrCreateDir, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}

	var perr *output.PreparationError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PreparationError, got %T", err)
	}
	if perr.Path != "/readonly/themes" {
		t.Errorf("Path = %q", perr.Path)
	}
}

func TestSave_WriteFails(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/out", 0755)
	cause := errors.New("disk full")
	mfs.FailOn("write", "/out/Foo-color-theme.json", cause)

	_, err := output.Save(mfs, "/out", "Foo", []byte("data"))
	if !errors.Is(err, output.ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}
	want := "failed writing theme `/out/Foo-color-theme.json`: write out/Foo-color-theme.json: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPrepareDir_Existing(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/themes", 0755)
	if err := output.PrepareDir(mfs, "/themes"); err != nil {
		t.Errorf("PrepareDir() error = %v", err)
	}
}
