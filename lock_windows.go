//go:build windows

package godbfcp

import (
	"os"

	"golang.org/x/sys/windows"
)

// openShared opens path for reading. os.Open already shares read and write
// access with other handles on Windows.
func openShared(path string) (*os.File, error) {
	return os.Open(path)
}

// openExclusive opens path for writing with a zero share mode, so no other
// handle can read or write the file until it is closed.
func openExclusive(path string) (*os.File, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	h, err := windows.CreateFile(name,
		windows.GENERIC_WRITE,
		0,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(h), path), nil
}
