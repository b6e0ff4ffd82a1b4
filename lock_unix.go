//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package godbfcp

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openShared opens path for reading. A shared flock is taken so that a file
// held by an exclusive writer is reported instead of read mid-write; other
// readers and unlocked writers are not excluded. While the flock is held, a
// SetCodepageByte from another process fails with ErrUnavailable, as it
// would against an open handle on Windows.
func openShared(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if err := flock(f, unix.LOCK_SH|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// openExclusive opens path for writing and takes an exclusive flock for
// the lifetime of the handle.
func openExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	if err := flock(f, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func flock(f *os.File, how int) error {
	for {
		err := unix.Flock(int(f.Fd()), how)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if errors.Is(err, unix.EWOULDBLOCK) {
			return &os.PathError{Op: "flock", Path: f.Name(), Err: fmt.Errorf("file is locked by another process: %w", err)}
		}
		if err != nil {
			return &os.PathError{Op: "flock", Path: f.Name(), Err: err}
		}
		return nil
	}
}
