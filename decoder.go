package godbfcp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/axgle/mahonia"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ErrNoDecoder is returned when no decoder exists for a code page number.
var ErrNoDecoder = errors.New("no decoder for code page")

// Decoder converts character field data to UTF-8. mahonia.Decoder
// satisfies it.
type Decoder interface {
	ConvertString(s string) string
}

var textEncodings = map[int]encoding.Encoding{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	855:  charmap.CodePage855,
	858:  charmap.CodePage858,
	860:  charmap.CodePage860,
	862:  charmap.CodePage862,
	863:  charmap.CodePage863,
	865:  charmap.CodePage865,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

type textDecoder struct {
	enc encoding.Encoding
}

// ConvertString returns s unchanged when it cannot be decoded.
func (d textDecoder) ConvertString(s string) string {
	out, err := d.enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// NewDecoder returns a decoder for a Windows code page number, as returned
// by ResolveEncodingID.
func NewDecoder(encodingID int) (Decoder, error) {
	if enc, ok := textEncodings[encodingID]; ok {
		return textDecoder{enc: enc}, nil
	}
	// Fall back to mahonia aliases for DOS code pages x/text lacks.
	id := strconv.Itoa(encodingID)
	for _, name := range []string{"cp" + id, "ibm" + id, "windows-" + id} {
		if mahonia.GetCharset(name) != nil {
			return mahonia.NewDecoder(name), nil
		}
	}
	return nil, fmt.Errorf("%w %d", ErrNoDecoder, encodingID)
}

// DecoderFor returns the decoder for the encoding a code page mark names.
func DecoderFor(cp CodePage) (Decoder, error) {
	if !cp.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCodePage, cp)
	}
	return NewDecoder(ResolveEncodingID(cp))
}
