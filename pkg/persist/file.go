package persist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/taskline/pkg/task"
)

// DefaultLockTimeout is how long File waits for another process to release the lock.
const DefaultLockTimeout = 5 * time.Second

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

var ErrLockTimeout = errors.New("lock acquisition timeout")

// File persists a list to a line-oriented text file.
// Writes are atomic (temp file, fsync, rename) and both reads and writes
// hold an exclusive lock on a sibling .lock file.
type File struct {
	path        string
	lockTimeout time.Duration
}

func InFile(path string) *File {
	return &File{path: path, lockTimeout: DefaultLockTimeout}
}

// WithLockTimeout returns a copy of f that waits at most d for the lock.
func (f File) WithLockTimeout(d time.Duration) *File {
	f.lockTimeout = d
	return &f
}

func (f *File) Path() string {
	return f.path
}

// Write saves a list to the file, creating parent directories as needed.
func (f *File) Write(l *task.List) error {
	if err := os.MkdirAll(filepath.Dir(f.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	unlock, err := f.lock()
	if err != nil {
		return err
	}
	defer unlock()

	return atomicWrite(f.path, Encode(l))
}

// Read loads the list from the file. A missing file is an empty list.
func (f *File) Read() (*task.List, error) {
	if _, err := os.Stat(f.path); errors.Is(err, os.ErrNotExist) {
		return task.NewList(), nil
	}
	unlock, err := f.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	bs, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	l, err := Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return l, nil
}

func (f *File) lock() (func(), error) {
	lf, err := os.OpenFile(f.path+".lock", os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(f.lockTimeout)
	for {
		err := lockFile(lf.Fd())
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			_ = lf.Close()
			return nil, fmt.Errorf("failed to lock %s: %w", f.path, ErrLockTimeout)
		}
		time.Sleep(50 * time.Millisecond)
	}

	return func() {
		_ = unlockFile(lf.Fd())
		_ = lf.Close()
	}, nil
}

func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// data must be on disk before the rename makes it visible
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
