package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const outputLockTimeout = 10 * time.Second

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readTextFile reads path as UTF-8 text, dropping a leading byte order mark.
// Encoding is validated later by the analyzer.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

// acquireOutputLock takes the exclusive lock guarding writes to path.
// The lock lives next to the output as path + ".lock".
func acquireOutputLock(path string, timeout time.Duration) (*flock.Flock, func(), error) {
	lockPath := path + ".lock"
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, func() {}, fmt.Errorf("cannot acquire output lock: %w", err)
		}
		if locked {
			return l, func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, func() {}, fmt.Errorf("another quill run is writing %s (lock: %s)", path, lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// writeOutputFile replaces path with data while holding the output lock.
// Data goes to a sibling temp file first so readers never see a partial write.
func writeOutputFile(path string, data []byte, timeout time.Duration) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	_, unlock, err := acquireOutputLock(path, timeout)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}
