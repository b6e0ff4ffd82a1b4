package godbfcp

import (
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"time"
)

// codepageOffset is the position of the code page mark,
// see http://www.dbf2002.com/dbf-file-format.html
const codepageOffset = 29

// now is replaced in tests.
var now = time.Now

// headerLead is bytes 0-3 of the header.
type headerLead struct {
	Version         byte
	LastUpdateYear  byte
	LastUpdateMonth byte
	LastUpdateDay   byte
}

// headerTail is bytes 29-31 of the header.
type headerTail struct {
	CodePage byte
	Reserved [2]byte
}

// ReadHeader validates the header of a DBF file and returns the fields it
// checked. When enabled is not empty the file type must be one of them.
// Only bytes 0-3 and 29-31 are read; the file is opened for shared access
// and closed before returning.
func ReadHeader(path string, enabled ...FileType) (FileHeader, error) {
	f, err := openShared(path)
	if err != nil {
		return FileHeader{}, unavailable(err)
	}
	defer f.Close()

	var lead headerLead
	if err := binary.Read(f, binary.LittleEndian, &lead); err != nil {
		return FileHeader{}, readError(path, 0, err)
	}
	if !validUpdateDate(lead.LastUpdateYear, lead.LastUpdateMonth, lead.LastUpdateDay) {
		return FileHeader{}, headerError(path, 1, ErrInvalidDate)
	}
	fileType := FileType(lead.Version)
	if !fileType.IsValid() {
		return FileHeader{}, headerError(path, 0, ErrUnknownFileType)
	}
	if len(enabled) > 0 && !slices.Contains(enabled, fileType) {
		return FileHeader{}, headerError(path, 0, ErrFileTypeNotEnabled)
	}

	if _, err := f.Seek(codepageOffset, io.SeekStart); err != nil {
		return FileHeader{}, unavailable(err)
	}
	var tail headerTail
	if err := binary.Read(f, binary.LittleEndian, &tail); err != nil {
		return FileHeader{}, readError(path, codepageOffset, err)
	}
	if tail.Reserved != [2]byte{} {
		return FileHeader{}, headerError(path, codepageOffset+1, ErrReservedNotZero)
	}
	cp := CodePage(tail.CodePage)
	if !cp.IsValid() {
		return FileHeader{}, headerError(path, codepageOffset, ErrUnknownCodePage)
	}

	return FileHeader{
		FileType:        fileType,
		LastUpdateYear:  lead.LastUpdateYear,
		LastUpdateMonth: lead.LastUpdateMonth,
		LastUpdateDay:   lead.LastUpdateDay,
		CodePage:        cp,
	}, nil
}

// validUpdateDate is a plausibility check only: day 31 is accepted for
// every month.
func validUpdateDate(year, month, day byte) bool {
	// dBASE III+ and Clipper store the year as its last two digits, the
	// others count from 1900. Only next year is accepted.
	maxYear := now().Year() - 2000 + 1
	if year >= 100 {
		maxYear += 100
	}
	return int(year) <= maxYear &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31
}

func readError(path string, offset int64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return headerError(path, offset, ErrTruncated)
	}
	return unavailable(err)
}
