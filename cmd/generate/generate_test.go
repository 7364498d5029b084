/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/vstheme/config"
	"bennypowers.dev/vstheme/formatter"
	"bennypowers.dev/vstheme/formatter/vscode"
	"bennypowers.dev/vstheme/internal/logger"
	"bennypowers.dev/vstheme/internal/mapfs"
	"bennypowers.dev/vstheme/output"
	"bennypowers.dev/vstheme/schema"
	"bennypowers.dev/vstheme/testutil"
)

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(io.Discard) })
	return &buf
}

func TestRun_WritesConfiguredDefinitions(t *testing.T) {
	logs := quietLogs(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := config.Load(mfs, "/project")
	require.NoError(t, err)
	specs, err := cfg.ResolveDefinitions(mfs, "/project")
	require.NoError(t, err)

	require.NoError(t, Run(mfs, specs, Options{Format: cfg.FormatOptions()}))

	dark, err := mfs.ReadFile("/project/dist/Fixture Dark-color-theme.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dark), vscode.Header))
	assert.Contains(t, string(dark), `"editor.background": "#1E1E1E"`, "legacy schema elides opaque alpha")

	light, err := mfs.ReadFile("/project/dist/light/Fixture Light-color-theme.json")
	require.NoError(t, err)
	assert.Contains(t, string(light), `"semanticHighlighting": false`)
	assert.NotContains(t, string(light), "semanticTokenColors")

	assert.Contains(t, logs.String(), "Wrote /project/dist/Fixture Dark-color-theme.json")
}

func TestRun_OutDirOverride(t *testing.T) {
	quietLogs(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")

	specs := []config.DefinitionSpec{{Path: "/defs/dark.yaml", OutDir: "/ignored"}}
	require.NoError(t, Run(mfs, specs, Options{OutDir: "/out"}))

	assert.True(t, mfs.Exists("/out/Fixture Dark-color-theme.json"))
	assert.False(t, mfs.Exists("/ignored"))
}

func TestRun_Stdout(t *testing.T) {
	quietLogs(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")

	var out bytes.Buffer
	specs := []config.DefinitionSpec{{Path: "/defs/light.jsonc"}}
	opts := Options{
		Format: formatter.Options{Indent: "  ", Schema: schema.Current},
		Stdout: &out,
	}
	require.NoError(t, Run(mfs, specs, opts))

	assert.Contains(t, out.String(), "\n  \"name\": \"Fixture Light\",\n")
	assert.Contains(t, out.String(), `"foreground": "#008000FF"`)
	assert.False(t, mfs.Exists("/defs/themes"))
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	logs := quietLogs(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")

	specs := []config.DefinitionSpec{
		{Path: "/defs/missing.yaml", OutDir: "/out"},
		{Path: "/defs/dark.yaml", OutDir: "/out"},
	}
	err := Run(mfs, specs, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 definitions failed")
	assert.Contains(t, logs.String(), "warning: reading definition")
	assert.True(t, mfs.Exists("/out/Fixture Dark-color-theme.json"))
}

func TestRun_OutputErrorKinds(t *testing.T) {
	quietLogs(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/definitions/simple", "/defs")
	mfs.AddFile("/blocked", "file", 0644)

	err := Run(mfs, []config.DefinitionSpec{{Path: "/defs/dark.yaml"}}, Options{OutDir: "/blocked"})
	assert.True(t, errors.Is(err, output.ErrNotDirectory), "got %v", err)

	mfs.FailOn("mkdir", "/nope", errors.New("permission denied"))
	err = Run(mfs, []config.DefinitionSpec{{Path: "/defs/dark.yaml"}}, Options{OutDir: "/nope"})
	assert.True(t, errors.Is(err, output.ErrCreateDir), "got %v", err)
}

func TestDefinitions_Args(t *testing.T) {
	cfg := &config.Config{
		OutDir:      "dist",
		Definitions: []config.DefinitionSpec{{Path: "a.yaml", OutDir: "special"}},
	}
	specs, err := definitions(nil, cfg, []string{"a.yaml", "b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []config.DefinitionSpec{
		{Path: "a.yaml", OutDir: "special"},
		{Path: "b.yaml", OutDir: "dist"},
	}, specs)
}

func TestLoadConfig(t *testing.T) {
	mfs := mapfs.New()
	cfg, err := loadConfig(mfs, "/project")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	mfs.AddFile("/project/.config/vstheme.yaml", "schema: v9\n", 0644)
	_, err = loadConfig(mfs, "/project")
	assert.ErrorIs(t, err, schema.ErrUnknownVersion)
	assert.Contains(t, err.Error(), "/project/.config/vstheme.yaml")
}
