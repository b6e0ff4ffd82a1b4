package godbfcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FileType is the DBF file type byte stored at offset 0.
type FileType byte

const (
	FoxBASE             FileType = 0x02 // FoxBASE
	DBase3              FileType = 0x03 // FoxBASE+/dBASE III PLUS, no memo
	BDE                 FileType = 0x04 // Borland Database Engine
	VisualFoxPro        FileType = 0x30 // Visual FoxPro
	VisualFoxProAutoInc FileType = 0x31 // Visual FoxPro, autoincrement enabled
	VisualFoxProVar     FileType = 0x32 // Visual FoxPro with Varchar or Varbinary fields
	DBase4SQL           FileType = 0x43 // dBASE IV SQL table files, no memo
	DBase4SQLSystem     FileType = 0x63 // dBASE IV SQL system files, no memo
	DBase3Memo          FileType = 0x83 // FoxBASE+/dBASE III PLUS, with memo
	DBase4Memo          FileType = 0x8B // dBASE IV with memo
	DBase4SQLMemo       FileType = 0xCB // dBASE IV SQL table files, with memo
	FoxPro2Memo         FileType = 0xF5 // FoxPro 2.x (or earlier) with memo
	HiPerSix            FileType = 0xE5 // HiPer-Six format with SMT memo file
	FoxBASE2            FileType = 0xFB // FoxBASE
)

var fileTypeNames = map[FileType]string{
	FoxBASE:             "FoxBASE",
	DBase3:              "DBase3",
	BDE:                 "BDE",
	VisualFoxPro:        "VisualFoxPro",
	VisualFoxProAutoInc: "VisualFoxProAutoInc",
	VisualFoxProVar:     "VisualFoxProVar",
	DBase4SQL:           "DBase4SQL",
	DBase4SQLSystem:     "DBase4SQLSystem",
	DBase3Memo:          "DBase3Memo",
	DBase4Memo:          "DBase4Memo",
	DBase4SQLMemo:       "DBase4SQLMemo",
	FoxPro2Memo:         "FoxPro2Memo",
	HiPerSix:            "HiPerSix",
	FoxBASE2:            "FoxBASE2",
}

// IsValid reports whether t is a known DBF file type.
func (t FileType) IsValid() bool {
	_, ok := fileTypeNames[t]
	return ok
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FileType(0x%02X)", byte(t))
}

// ParseFileType accepts a file type name (case-insensitive) or a byte value
// such as "0x83" or "131".
func ParseFileType(s string) (FileType, error) {
	s = strings.TrimSpace(s)
	for t, name := range fileTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil || !FileType(n).IsValid() {
		return 0, fmt.Errorf("unknown dbf file type %q", s)
	}
	return FileType(n), nil
}

// FileHeader is the validated view of the fields this package reads from
// the first 32 bytes of a DBF file. It is only produced by ReadHeader.
type FileHeader struct {
	FileType        FileType
	LastUpdateYear  byte
	LastUpdateMonth byte
	LastUpdateDay   byte
	CodePage        CodePage
}

func (h FileHeader) lastUpdateYear() int {
	if h.LastUpdateYear < 100 {
		return 2000 + int(h.LastUpdateYear)
	}
	return 1900 + int(h.LastUpdateYear)
}

// LastUpdated returns the last update date. The year byte counts from 1900;
// values below 100 come from dBASE III and Clipper, which store only the
// last two digits of a 20xx year. Days past the end of the month, which
// ReadHeader accepts, are normalized into the following month.
func (h FileHeader) LastUpdated() time.Time {
	return time.Date(h.lastUpdateYear(), time.Month(h.LastUpdateMonth), int(h.LastUpdateDay), 0, 0, 0, 0, time.Local)
}

// LastUpdateDate formats the stored date as YYYY-MM-DD without normalizing
// it, so a header dated April 31 reads back as such.
func (h FileHeader) LastUpdateDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", h.lastUpdateYear(), h.LastUpdateMonth, h.LastUpdateDay)
}
