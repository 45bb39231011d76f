// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/tblsel/internal/log"
)

const (
	// EnvDir overrides the base cache directory.
	EnvDir = "TBLSEL_CACHE_DIR"
	// EnvEnabled disables caching when set to "0" or "false".
	EnvEnabled = "TBLSEL_CACHE"
)

// Entry is a cached artifact on disk. Key is the clear-text key and
// EncodedKey the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
	ModTime    time.Time
}

// Dir resolves the base cache directory: TBLSEL_CACHE_DIR when set, otherwise
// os.UserCacheDir()/tblsel. Returns ("", false) when neither resolves.
func Dir() (string, bool) {
	if c, ok := os.LookupEnv(EnvDir); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "tblsel"), true
	}
	return "", false
}

// Enabled returns true unless TBLSEL_CACHE explicitly disables it.
func Enabled() bool {
	v := os.Getenv(EnvEnabled)
	return v != "0" && v != "false"
}

// EnsureBaseDir creates the base cache directory if caching is enabled and a
// base path can be resolved. It returns the path, whether it is usable, and
// any creation error.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// EntryPath returns where the entry for clearKey beneath subdirs lives and
// whether a file is there now.
func EntryPath(subdirs []string, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	p := filepath.Join(append(append([]string{base}, subdirs...), encodeKey(clearKey))...)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p, true
	}
	return p, false
}

// Read returns the cached entry for clearKey. Data is returned byte for byte.
func Read(subdirs []string, clearKey string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}

	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		log.Debugf("cache read failed: key=%s err=%v", clearKey, err)
		return nil, false
	}

	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{
		Key:        clearKey,
		EncodedKey: filepath.Base(p),
		Path:       p,
		Data:       b,
		ModTime:    info.ModTime(),
	}, true
}

// Write stores data for clearKey beneath subdirs, creating directories as
// needed. A disabled cache makes this a no-op.
func Write(subdirs []string, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Write then rename so a reader never sees half an entry.
	p := filepath.Join(dir, encodeKey(clearKey))
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: key=%s bytes=%d", clearKey, len(data))
	return nil
}

// Remove deletes the entry for clearKey, if any.
func Remove(subdirs []string, clearKey string) error {
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	return nil
}

// Purge removes files older than maxAge. A non-positive maxAge or an
// unresolvable cache dir makes it a no-op.
func Purge(maxAge time.Duration) error {
	if maxAge <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// encodeKey returns the hex sha256 of input.
func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
