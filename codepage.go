package godbfcp

import (
	"fmt"
	"strconv"
	"strings"
)

// CodePage is the code page mark (language driver id) stored at offset 29
// of a DBF header.
type CodePage byte

const (
	OEM    CodePage = 0x00
	CP437  CodePage = 0x01 // US MS-DOS
	CP850  CodePage = 0x02 // International MS-DOS
	CP1252 CodePage = 0x03 // Windows ANSI
	ANSI   CodePage = 0x57
	CP737  CodePage = 0x6A // Greek MS-DOS
	CP852  CodePage = 0x64 // Eastern European MS-DOS
	CP857  CodePage = 0x6B // Turkish MS-DOS
	CP861  CodePage = 0x67 // Icelandic MS-DOS
	CP865  CodePage = 0x66 // Nordic MS-DOS
	CP866  CodePage = 0x65 // Russian MS-DOS
	CP950  CodePage = 0x78 // Chinese (Big5) Windows
	CP936  CodePage = 0x7A // Chinese (GBK) Windows
	CP932  CodePage = 0x7B // Japanese Windows
	CP1255 CodePage = 0x7D // Hebrew Windows
	CP1256 CodePage = 0x7E // Arabic Windows
	CP1250 CodePage = 0xC8 // Eastern European Windows
	CP1251 CodePage = 0xC9 // Russian Windows
	CP1254 CodePage = 0xCA // Turkish Windows
	CP1253 CodePage = 0xCB // Greek Windows

	// InvalidCodePage is returned by a non-strict Setter when a file cannot
	// be read. It is not a member of the catalog.
	InvalidCodePage CodePage = 0xFF
)

type catalogEntry struct {
	code CodePage
	name string
	id   int // 0 for host dependent codes
}

var catalog = []catalogEntry{
	{OEM, "OEM", 0},
	{CP437, "CP437", 437},
	{CP850, "CP850", 850},
	{CP1252, "CP1252", 1252},
	{ANSI, "ANSI", 0},
	{CP737, "CP737", 737},
	{CP852, "CP852", 852},
	{CP857, "CP857", 857},
	{CP861, "CP861", 861},
	{CP865, "CP865", 865},
	{CP866, "CP866", 866},
	{CP950, "CP950", 950},
	{CP936, "CP936", 936},
	{CP932, "CP932", 932},
	{CP1255, "CP1255", 1255},
	{CP1256, "CP1256", 1256},
	{CP1250, "CP1250", 1250},
	{CP1251, "CP1251", 1251},
	{CP1254, "CP1254", 1254},
	{CP1253, "CP1253", 1253},
}

var catalogIndex = func() map[CodePage]int {
	m := make(map[CodePage]int, len(catalog))
	for i, e := range catalog {
		m[e.code] = i
	}
	return m
}()

// CodePages returns every valid code page mark in catalog order.
func CodePages() []CodePage {
	cps := make([]CodePage, len(catalog))
	for i, e := range catalog {
		cps[i] = e.code
	}
	return cps
}

// IsValid reports whether cp is a known code page mark.
func (cp CodePage) IsValid() bool {
	_, ok := catalogIndex[cp]
	return ok
}

func (cp CodePage) String() string {
	if i, ok := catalogIndex[cp]; ok {
		return catalog[i].name
	}
	return fmt.Sprintf("CodePage(0x%02X)", byte(cp))
}

// HostDependent reports whether cp resolves through the host's OEM or ANSI
// code page rather than a fixed number.
func (cp CodePage) HostDependent() bool {
	return cp == OEM || cp == ANSI
}

// ResolveEncodingID returns the Windows code page number for cp. OEM and
// ANSI are looked up from the host on every call. It panics if cp is not a
// valid code page mark.
func ResolveEncodingID(cp CodePage) int {
	switch cp {
	case OEM:
		return hostOEMCodePage()
	case ANSI:
		return hostANSICodePage()
	}
	i, ok := catalogIndex[cp]
	if !ok {
		panic(fmt.Sprintf("godbfcp: ResolveEncodingID called with %v", cp))
	}
	return catalog[i].id
}

// CodePageForEncodingID returns the fixed code page mark for a Windows code
// page number. The host dependent marks are never returned.
func CodePageForEncodingID(id int) (CodePage, bool) {
	for _, e := range catalog {
		if e.id != 0 && e.id == id {
			return e.code, true
		}
	}
	return InvalidCodePage, false
}

// ParseCodePage accepts a catalog name ("CP1252", "ansi"), a mark byte in
// hex ("0x57") or a Windows code page number ("1252").
func ParseCodePage(s string) (CodePage, error) {
	s = strings.TrimSpace(s)
	for _, e := range catalog {
		if strings.EqualFold(e.name, s) {
			return e.code, nil
		}
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 8)
		if err == nil && CodePage(n).IsValid() {
			return CodePage(n), nil
		}
		return InvalidCodePage, fmt.Errorf("unknown code page mark %q", s)
	}
	if n, err := strconv.Atoi(s); err == nil {
		if cp, ok := CodePageForEncodingID(n); ok {
			return cp, nil
		}
		return InvalidCodePage, fmt.Errorf("code page %d has no dbf code page mark", n)
	}
	return InvalidCodePage, fmt.Errorf("unknown code page %q", s)
}
