// Package cache prepares the cache directory that the first configuration
// directory points at.
//
// Initialization creates the directory, takes an exclusive flock(2) on a
// lock file inside it, and atomically writes a manifest. Running it again on
// an initialized directory returns the existing manifest.
//
// This implementation is Unix-only.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"
)

const (
	// ManifestFileName is the manifest written into an initialized cache dir.
	ManifestFileName = "cache.json"

	// LockFileName is the lock file guarding initialization.
	LockFileName = ".cfgdirs.lock"

	// ManifestVersion is the current manifest format version.
	ManifestVersion = 1

	dirPerm  = 0o750
	filePerm = 0o600
)

// Manifest describes an initialized cache directory.
type Manifest struct {
	Version       int       `json:"version"`
	Dir           string    `json:"dir"`
	InitializedAt time.Time `json:"initialized_at"` //nolint:tagliatelle // snake_case for on-disk file

	// Created is true when this call wrote the manifest, false when an
	// existing one was found.
	Created bool `json:"-"`
}

// Dir initializes cache directories on the local filesystem.
type Dir struct {
	now   func() time.Time
	flock func(fd int, how int) error
}

// NewDir returns a [Dir] using the wall clock.
func NewDir() *Dir {
	return &Dir{
		now:   time.Now,
		flock: unix.Flock,
	}
}

// Initialize prepares dir as a cache directory and returns its manifest.
//
// Returns [ErrDirEmpty] if dir is "". An existing manifest with the current
// version is returned unchanged with Created == false. A manifest with any
// other version is rejected with [ErrManifestInvalid].
func (d *Dir) Initialize(ctx context.Context, dir string) (Manifest, error) {
	if dir == "" {
		return Manifest{}, ErrDirEmpty
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Manifest{}, fmt.Errorf("resolve cache dir: %w", err)
	}

	err = os.MkdirAll(abs, dirPerm)
	if err != nil {
		return Manifest{}, fmt.Errorf("create cache dir: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Manifest{}, err
	}

	unlock, err := d.lock(abs)
	if err != nil {
		return Manifest{}, err
	}
	defer unlock()

	existing, err := Open(abs)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotInitialized) {
		return Manifest{}, err
	}

	if err := ctx.Err(); err != nil {
		return Manifest{}, err
	}

	m := Manifest{
		Version:       ManifestVersion,
		Dir:           abs,
		InitializedAt: d.now().UTC().Truncate(time.Second),
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("encode manifest: %w", err)
	}

	err = atomic.WriteFile(filepath.Join(abs, ManifestFileName), bytes.NewReader(append(data, '\n')))
	if err != nil {
		return Manifest{}, fmt.Errorf("write manifest: %w", err)
	}

	m.Created = true

	return m, nil
}

// Open reads the manifest of an initialized cache dir.
// Returns [ErrNotInitialized] if there is no manifest.
func Open(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured cache dir
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrNotInitialized, dir)
		}

		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest

	err = json.Unmarshal(data, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w %s: %w", ErrManifestInvalid, path, err)
	}

	if m.Version != ManifestVersion {
		return Manifest{}, fmt.Errorf("%w %s: unsupported version %d", ErrManifestInvalid, path, m.Version)
	}

	return m, nil
}

// lock takes an exclusive flock on the lock file in dir. The returned func
// releases it.
func (d *Dir) lock(dir string) (func(), error) {
	path := filepath.Join(dir, LockFileName)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePerm) //nolint:gosec // path is built from the configured cache dir
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	for {
		err = d.flock(int(f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}

	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%w: %s: %w", ErrLock, path, err)
	}

	return func() {
		_ = d.flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
