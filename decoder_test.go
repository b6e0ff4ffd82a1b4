package godbfcp

import (
	"testing"

	"github.com/axgle/mahonia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecoder(t *testing.T) {
	tests := []struct {
		id   int
		in   string
		want string
	}{
		{437, "\x82t\x82", "été"},
		{850, "\x9a", "Ü"},
		{852, "\xa5", "ą"},
		{866, "\x8f\xe0\xa8\xa2\xa5\xe2", "Привет"},
		{1250, "\xb9", "ą"},
		{1251, "\xcf\xf0\xe8\xe2\xe5\xf2", "Привет"},
		{1252, "caf\xe9", "café"},
		{1253, "\xe1", "α"},
		{936, "\xc4\xe3\xba\xc3", "你好"},
		{932, "\x82\xa0", "あ"},
		{737, "\x80\x98", "Αα"},
		{857, "\x98\x8d", "İı"},
		{861, "\x8b\x8c\x8d", "ÐðÞ"},
	}
	for _, tt := range tests {
		dec, err := NewDecoder(tt.id)
		require.NoError(t, err, tt.id)
		assert.Equal(t, tt.want, dec.ConvertString(tt.in), tt.id)
	}
}

func TestNewDecoder_MahoniaFallback(t *testing.T) {
	for _, id := range []int{737, 857, 861} {
		_, inText := textEncodings[id]
		require.False(t, inText, id)

		dec, err := NewDecoder(id)
		require.NoError(t, err, id)
		assert.IsType(t, mahonia.Decoder(nil), dec, id)
	}
}

func TestDecoderFor_Catalog(t *testing.T) {
	for _, cp := range CodePages() {
		if cp.HostDependent() {
			continue
		}
		dec, err := DecoderFor(cp)
		require.NoError(t, err, cp.String())
		assert.Equal(t, "DBF", dec.ConvertString("DBF"), cp.String())
	}
}

func TestNewDecoder_Unknown(t *testing.T) {
	_, err := NewDecoder(12345)
	require.ErrorIs(t, err, ErrNoDecoder)
}

func TestDecoderFor(t *testing.T) {
	dec, err := DecoderFor(CP1251)
	require.NoError(t, err)
	assert.Equal(t, "Ж", dec.ConvertString("\xc6"))

	_, err = DecoderFor(InvalidCodePage)
	require.ErrorIs(t, err, ErrUnknownCodePage)
}
