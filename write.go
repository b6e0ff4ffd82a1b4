package godbfcp

import (
	"fmt"
	"io"
)

// openForWrite is replaced in tests to observe exclusive opens.
var openForWrite = openExclusive

// writeCodepageByte overwrites the single byte at codepageOffset. The file
// must already have been validated.
func writeCodepageByte(path string, cp CodePage) (err error) {
	f, err := openForWrite(path)
	if err != nil {
		return unavailable(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = unavailable(cerr)
		}
	}()

	if _, err = f.Seek(codepageOffset, io.SeekStart); err != nil {
		return unavailable(err)
	}
	if _, err = f.Write([]byte{byte(cp)}); err != nil {
		return unavailable(err)
	}
	return nil
}

// SetCodepageByte validates the DBF file at path and writes cp as its code
// page mark. A file that already carries cp is not opened for writing.
func SetCodepageByte(path string, cp CodePage, enabled ...FileType) error {
	if !cp.IsValid() {
		return fmt.Errorf("set %s: %w: 0x%02X", path, ErrUnknownCodePage, byte(cp))
	}
	actual, err := GetCodepageByte(path, enabled...)
	if err != nil {
		return err
	}
	if actual == cp {
		return nil
	}
	return writeCodepageByte(path, cp)
}
