//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package godbfcp

import "os"

// No portable advisory lock on these platforms; opens are not coordinated.

func openShared(path string) (*os.File, error) {
	return os.Open(path)
}

func openExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}
