package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
)

// RotatingFile is an append-only log file that is rotated once it would
// grow to maxBytes. Archives are named path.1 (newest) through path.N.
//
// Writes and rotations hold an advisory lock on path+".lock" so several
// processes can share one log file; a writer whose file was rotated away by
// another process reopens path before writing.
type RotatingFile struct {
	path     string
	maxBytes int64
	backups  int
	lock     *flock.Flock
	file     *os.File
	size     int64
}

// OpenRotatingFile opens (or creates) path for appending. Rotation is
// disabled when maxBytes or backups is zero.
func OpenRotatingFile(path string, maxBytes int64, backups int) (*RotatingFile, error) {
	if maxBytes < 0 || backups < 0 {
		return nil, fmt.Errorf("invalid rotation settings: max bytes %d, backups %d", maxBytes, backups)
	}
	f, size, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	return &RotatingFile{
		path:     path,
		maxBytes: maxBytes,
		backups:  backups,
		lock:     flock.New(path + ".lock"),
		file:     f,
		size:     size,
	}, nil
}

func openAppend(path string) (*os.File, int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, 0, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, st.Size(), nil
}

// Path returns the active log file path.
func (w *RotatingFile) Path() string {
	return w.path
}

// Write appends p as a single write, rotating first if needed.
func (w *RotatingFile) Write(p []byte) (int, error) {
	if err := w.lock.Lock(); err != nil {
		return 0, fmt.Errorf("locking %s: %w", w.lock.Path(), err)
	}
	defer w.lock.Unlock()

	if err := w.refresh(); err != nil {
		return 0, err
	}
	if w.shouldRotate(len(p)) {
		if err := w.rotate(); err != nil {
			return 0, fmt.Errorf("rotating %s: %w", w.path, err)
		}
	}
	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// refresh picks up rotations and writes made by other processes.
func (w *RotatingFile) refresh() error {
	onDisk, err := os.Stat(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return w.reopen()
	}
	if err != nil {
		return err
	}
	open, err := w.file.Stat()
	if err != nil {
		// Left closed by a failed rotation.
		return w.reopen()
	}
	if !os.SameFile(open, onDisk) {
		return w.reopen()
	}
	w.size = onDisk.Size()
	return nil
}

func (w *RotatingFile) shouldRotate(n int) bool {
	if w.maxBytes == 0 || w.backups == 0 {
		return false
	}
	return w.size > 0 && w.size+int64(n) >= w.maxBytes
}

func (w *RotatingFile) rotate() error {
	if err := w.file.Close(); err != nil {
		return err
	}
	for i := w.backups - 1; i > 0; i-- {
		src := w.archive(i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := replace(src, w.archive(i+1)); err != nil {
			return err
		}
	}
	if err := replace(w.path, w.archive(1)); err != nil {
		return err
	}
	return w.reopen()
}

func (w *RotatingFile) reopen() error {
	if w.file != nil {
		w.file.Close()
	}
	f, size, err := openAppend(w.path)
	if err != nil {
		return err
	}
	w.file = f
	w.size = size
	return nil
}

func (w *RotatingFile) archive(n int) string {
	return fmt.Sprintf("%s.%d", w.path, n)
}

func replace(src, dst string) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

// Close closes the log file and releases the lock file handle.
func (w *RotatingFile) Close() error {
	err := w.file.Close()
	if lerr := w.lock.Close(); err == nil {
		err = lerr
	}
	return err
}
