// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points TBLSEL_CFG_FILE at a testdata file and resets the
// global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv(EnvFile, absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig sets up a test config, loads it and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, err := Load()
	require.NoError(t, err)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "yaml", cfg.Data["output"])
				assert.Equal(t, "us-east-1", cfg.Data["region"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]any)
				require.True(t, ok, "colors should be a map")
				assert.Equal(t, "#00ffff", colors["title"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "frames", cfg.Data["name"])
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["titles"])
				assert.Equal(t, 3.0, cfg.Data["padding"])
				assert.Len(t, cfg.Data["tags"], 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "invalid yaml",
			testFile: "invalid.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to parse config")
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_Namespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")

	cfg, err := Load("select")
	require.NoError(t, err)
	assert.Equal(t, "select", cfg.Namespace)
	assert.Equal(t, "select", Config.Namespace)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv(EnvFile, "/nonexistent/path/tblsel.yaml")
	Config = Type{}

	_, err := Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_ConfigFileIsDirectory(t *testing.T) {
	t.Setenv(EnvFile, "testdata")
	Config = Type{}

	_, err := Load()
	assert.ErrorContains(t, err, "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple value", testFile: "simple.yaml", key: "output", want: "yaml"},
		{name: "nested value", testFile: "nested.yaml", key: "colors.odd", want: "#999999"},
		{name: "namespace wins", testFile: "nested.yaml", namespace: "select", key: "output", want: "json"},
		{name: "namespace falls back", testFile: "nested.yaml", namespace: "cols", key: "output", want: "text"},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"dflt"}, want: "dflt"},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-string value", testFile: "mixed-types.yaml", key: "version", wantErr: true},
		{name: "multiple defaults", testFile: "simple.yaml", key: "missing", defaultValue: []string{"a", "b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, err := Load(tt.namespace)
			require.NoError(t, err)

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", testFile: "mixed-types.yaml", key: "version", want: 1},
		{name: "float converted", testFile: "mixed-types.yaml", key: "padding", want: 3},
		{name: "namespace wins", testFile: "nested.yaml", namespace: "select", key: "padding", want: 4},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-int value", testFile: "simple.yaml", key: "region", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, err := Load(tt.namespace)
			require.NoError(t, err)

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "select"
		got, err := GetBool("titles")
		require.NoError(t, err)
		assert.True(t, got)

		Config.Namespace = "cols"
		got, err = GetBool("titles")
		require.NoError(t, err)
		assert.False(t, got)

		got, err = GetBool("missing", true)
		require.NoError(t, err)
		assert.True(t, got)

		_, err = GetBool("output")
		assert.ErrorIs(t, err, ErrType)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "sets.yaml", func(t *testing.T) {
		vals, err := GetStringSlice("select.sets.ints")
		require.NoError(t, err)
		assert.Equal(t, []string{"--ends-with _end", "--contains int"}, vals)

		_, err = GetStringSlice("select.sets.broken")
		assert.ErrorIs(t, err, ErrType)

		_, err = GetStringSlice("not_a_list")
		assert.ErrorIs(t, err, ErrType)

		def := []string{"x", "y"}
		vals, err = GetStringSlice("does.not.exist", def)
		require.NoError(t, err)
		assert.Equal(t, def, vals)

		_, err = GetStringSlice("does.not.exist")
		assert.Error(t, err)
	})
}

func TestSet(t *testing.T) {
	withConfig(t, "sets.yaml", func(t *testing.T) {
		assert.Equal(t, []string{"--ends-with", "_end", "--contains", "int"}, Set("select", "ints"))
		assert.Equal(t, []string{"--titles"}, Set("select", "defaults"))
		assert.Nil(t, Set("select", "nope"))
		assert.Nil(t, Set("cols", "ints"))
	})
}

func TestLazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	require.Empty(t, Config.Data)

	got, err := GetString("region")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", got)
	assert.NotEmpty(t, Config.Source)
}

func TestConfig_Get(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := Config.get("version.something")
		assert.ErrorContains(t, err, "no valid path found")

		v, err := Config.get("tags")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, v)
	})
}
