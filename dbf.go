// Package godbfcp reads and sets the code page mark of dBASE, FoxPro and
// compatible DBF files.
//
// Most DBF writers leave the code page mark at offset 29 empty (Clipper 5.2
// always writes zero). OLE DB and ODBC drivers use it to pick the encoding
// of character fields, so it must be set before such files are read by them.
package godbfcp

import "slices"

// CodePageAccessor reads and writes the code page mark of DBF files with a
// fixed configuration.
type CodePageAccessor interface {
	GetCodepageByte(fileName string) (CodePage, error)
	SetCodepageByte(fileName string) (bool, error)
	IsCodepageByteCorrect(fileName string) (bool, error)
}

// Setter applies one code page mark to DBF files. It is immutable after
// NewSetter and may be shared between goroutines.
type Setter struct {
	codePage     CodePage
	strict       bool
	enabledTypes []FileType
}

var _ CodePageAccessor = (*Setter)(nil)

// Option configures a Setter.
type Option func(*Setter)

// WithStrict makes the Setter return every error. A non-strict Setter
// reports failures as InvalidCodePage or false instead.
func WithStrict(strict bool) Option {
	return func(s *Setter) {
		s.strict = strict
	}
}

// WithEnabledFileTypes restricts the accepted files to the given types.
func WithEnabledFileTypes(types ...FileType) Option {
	return func(s *Setter) {
		for _, t := range types {
			if !slices.Contains(s.enabledTypes, t) {
				s.enabledTypes = append(s.enabledTypes, t)
			}
		}
	}
}

// NewSetter returns a non-strict Setter for cp that accepts every file type
// unless configured otherwise.
func NewSetter(cp CodePage, opts ...Option) *Setter {
	s := &Setter{codePage: cp}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Setter) CodePage() CodePage { return s.codePage }

func (s *Setter) Strict() bool { return s.strict }

// EnabledFileTypes returns a copy of the allow-list; nil means all types.
func (s *Setter) EnabledFileTypes() []FileType {
	return slices.Clone(s.enabledTypes)
}

// GetCodepageByte returns the code page mark of fileName. A non-strict
// Setter returns InvalidCodePage and a nil error when the file is not valid.
func (s *Setter) GetCodepageByte(fileName string) (CodePage, error) {
	cp, err := GetCodepageByte(fileName, s.enabledTypes...)
	if err != nil {
		if s.strict {
			return InvalidCodePage, err
		}
		return InvalidCodePage, nil
	}
	return cp, nil
}

// SetCodepageByte writes the Setter's code page mark to fileName. A
// non-strict Setter reports failure as false with a nil error.
func (s *Setter) SetCodepageByte(fileName string) (bool, error) {
	if err := SetCodepageByte(fileName, s.codePage, s.enabledTypes...); err != nil {
		if s.strict {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// IsCodepageByteCorrect reports whether fileName already carries the
// Setter's code page mark. Invalid files are never correct; a strict Setter
// also returns the reason.
func (s *Setter) IsCodepageByteCorrect(fileName string) (bool, error) {
	cp, err := s.GetCodepageByte(fileName)
	if err != nil {
		return false, err
	}
	return cp == s.codePage, nil
}

// GetCodepageByte validates the DBF file at path and returns its code page
// mark.
func GetCodepageByte(path string, enabled ...FileType) (CodePage, error) {
	h, err := ReadHeader(path, enabled...)
	if err != nil {
		return InvalidCodePage, err
	}
	return h.CodePage, nil
}
