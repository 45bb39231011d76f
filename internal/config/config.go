// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// EnvFile names the environment variable holding an explicit config file path.
const EnvFile = "TBLSEL_CFG_FILE"

// FileName is the config file looked up under os.UserConfigDir.
const FileName = "tblsel.yaml"

var (
	// ErrNotFound is returned when no config file can be located.
	ErrNotFound = errors.New("config file not found")

	// ErrType is returned by the typed getters when a value exists but has the
	// wrong shape.
	ErrType = errors.New("config value has the wrong type")
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: path of the YAML file loaded.
//   - Namespace: optional dotted prefix preferred during lookups, normally the
//     subcommand name (e.g. "select" makes "select.output" win over "output").
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]any
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// init attempts to load configuration at process start. Errors are ignored so
// the application can still run without a config file.
func init() {
	_, _ = Load()
}

// GetBool returns the boolean value for the given dotted key path.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%s is not a bool: %w", key, ErrType)
	}
	return b, nil
}

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s is not an int: %w", key, ErrType)
	}
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string: %w", key, ErrType)
	}
	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// If the key is not found and a single default slice is provided, that default
// is returned.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not a string: %w", key, i, ErrType)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s is not a list: %w", key, ErrType)
	}
}

// Set returns the arguments stored under <command>.sets.<name>, each entry
// split on whitespace. A missing set yields nil.
func Set(command, name string) []string {
	entries, err := GetStringSlice(command + ".sets." + name)
	if err != nil {
		log.Debugf("no set %s for %s: %v", name, command, err)
		return nil
	}

	var args []string
	for _, e := range entries {
		args = append(args, strings.Fields(e)...)
	}
	return args
}

// Load reads the YAML configuration file and populates the global Config.
// An optional namespace is recorded on the result.
func Load(namespace ...string) (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data,
	}
	if len(namespace) > 0 {
		Config.Namespace = namespace[0]
	}

	return Config, nil
}

// lookup lazily loads the config and resolves key against it.
func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		ns := Config.Namespace
		if _, err := Load(ns); err != nil {
			return nil, err
		}
	}
	return Config.get(key)
}

// get traverses the configuration tree using a dotted key path (e.g.
// "colors.title"). If Namespace is set, the namespaced key is tried first.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current any = cfg.Data

		found := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]any)
			if !ok {
				found = false
				break
			}
			if current, ok = m[part]; !ok {
				found = false
				break
			}
		}

		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// getConfigFile returns the path to the YAML config file. TBLSEL_CFG_FILE wins
// when set. Otherwise tblsel.yaml under os.UserConfigDir is used.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv(EnvFile); cfgPath != "" {
		info, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("%w at %s path: %s", ErrNotFound, EnvFile, cfgPath)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, cfgPath)
		}
		log.Debugf("using config file from %s: %s", EnvFile, cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, FileName)
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", fmt.Errorf("%w in standard locations", ErrNotFound)
}
