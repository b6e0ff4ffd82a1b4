package godbfcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEncodingID_Fixed(t *testing.T) {
	want := map[CodePage]int{
		CP437: 437, CP850: 850, CP1252: 1252, CP737: 737, CP852: 852,
		CP857: 857, CP861: 861, CP865: 865, CP866: 866, CP950: 950,
		CP936: 936, CP932: 932, CP1255: 1255, CP1256: 1256, CP1250: 1250,
		CP1251: 1251, CP1254: 1254, CP1253: 1253,
	}
	for cp, id := range want {
		assert.Equal(t, id, ResolveEncodingID(cp), cp.String())
		assert.False(t, cp.HostDependent())
	}
	assert.Len(t, CodePages(), len(want)+2)
}

func TestResolveEncodingID_HostDependent(t *testing.T) {
	assert.True(t, OEM.HostDependent())
	assert.True(t, ANSI.HostDependent())
	assert.Positive(t, ResolveEncodingID(OEM))
	assert.Positive(t, ResolveEncodingID(ANSI))
}

func TestResolveEncodingID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { ResolveEncodingID(InvalidCodePage) })
}

func TestInvalidCodePageIsNotInCatalog(t *testing.T) {
	assert.False(t, InvalidCodePage.IsValid())
	assert.NotContains(t, CodePages(), InvalidCodePage)
	assert.Equal(t, "CodePage(0xFF)", InvalidCodePage.String())
}

func TestCodePageForEncodingID(t *testing.T) {
	cp, ok := CodePageForEncodingID(1252)
	require.True(t, ok)
	assert.Equal(t, CP1252, cp)

	_, ok = CodePageForEncodingID(0)
	assert.False(t, ok)
	_, ok = CodePageForEncodingID(65001)
	assert.False(t, ok)

	for _, cp := range CodePages() {
		if cp.HostDependent() {
			continue
		}
		back, ok := CodePageForEncodingID(ResolveEncodingID(cp))
		require.True(t, ok)
		assert.Equal(t, cp, back)
	}
}

func TestParseCodePage(t *testing.T) {
	tests := []struct {
		in   string
		want CodePage
	}{
		{"CP1252", CP1252},
		{"cp866", CP866},
		{" ansi ", ANSI},
		{"OEM", OEM},
		{"0x57", ANSI},
		{"0X01", CP437},
		{"852", CP852},
		{"932", CP932},
	}
	for _, tt := range tests {
		got, err := ParseCodePage(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "CP65001", "0xFF", "0x123", "65001", "utf-8"} {
		got, err := ParseCodePage(in)
		assert.Error(t, err, in)
		assert.Equal(t, InvalidCodePage, got, in)
	}
}

func TestFileType(t *testing.T) {
	assert.True(t, DBase3.IsValid())
	assert.False(t, FileType(0x00).IsValid())
	assert.Equal(t, "VisualFoxPro", VisualFoxPro.String())
	assert.Equal(t, "FileType(0x99)", FileType(0x99).String())

	for _, in := range []string{"dbase3memo", "0x83", "131"} {
		ft, err := ParseFileType(in)
		require.NoError(t, err, in)
		assert.Equal(t, DBase3Memo, ft, in)
	}
	_, err := ParseFileType("0x99")
	assert.Error(t, err)
	_, err = ParseFileType("paradox")
	assert.Error(t, err)
}
