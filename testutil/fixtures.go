/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil locates the repository's testdata/ tree from any package
// and loads definitions, configs, and golden themes out of it.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/vstheme/internal/mapfs"
)

// updateGolden rewrites golden themes with the actual output: go test ./... -update
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataRoots are tried in order; packages sit at most two levels below
// the module root.
var testdataRoots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// testdataPath joins rel onto the nearest existing testdata directory, or
// returns "" when none is reachable.
func testdataPath(rel string) string {
	for _, root := range testdataRoots {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return filepath.Join(root, rel)
		}
	}
	return ""
}

// NewFixtureFS copies the fixture directory testdata/<fixtureDir> into a
// fresh in-memory filesystem under rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	dir := testdataPath(fixtureDir)
	if info, err := os.Stat(dir); dir == "" || err != nil || !info.IsDir() {
		t.Fatalf("fixture directory %s not found under testdata/", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile returns the content of testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	path := testdataPath(fixturePath)
	if path == "" {
		t.Fatalf("fixture %s not found under testdata/", fixturePath)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile writes actual to testdata/<goldenPath> when the test
// binary runs with -update, and does nothing otherwise.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	path := testdataPath(goldenPath)
	if path == "" {
		path = filepath.Join(testdataRoots[0], goldenPath)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(path, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file %s", path)
}
