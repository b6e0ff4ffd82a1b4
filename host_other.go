//go:build !windows

package godbfcp

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Without a Windows NLS database the host code pages are derived from the
// locale environment, using the defaults Windows assigns to each language.

const (
	invariantOEM  = 437
	invariantANSI = 1252
)

type hostCodePages struct {
	oem, ansi int
}

var languageCodePages = map[string]hostCodePages{
	"af": {850, 1252}, "ca": {850, 1252}, "da": {850, 1252}, "de": {850, 1252},
	"es": {850, 1252}, "eu": {850, 1252}, "fi": {850, 1252}, "fr": {850, 1252},
	"gl": {850, 1252}, "id": {850, 1252}, "it": {850, 1252}, "ms": {850, 1252},
	"nb": {850, 1252}, "nl": {850, 1252}, "nn": {850, 1252}, "no": {850, 1252},
	"pt": {850, 1252}, "sv": {850, 1252}, "sw": {850, 1252},
	"is": {861, 1252},
	"be": {866, 1251}, "bg": {866, 1251}, "kk": {866, 1251}, "ky": {866, 1251},
	"mk": {866, 1251}, "mn": {866, 1251}, "ru": {866, 1251}, "tt": {866, 1251},
	"uk": {866, 1251},
	"bs": {852, 1250}, "cs": {852, 1250}, "hr": {852, 1250}, "hu": {852, 1250},
	"pl": {852, 1250}, "ro": {852, 1250}, "sk": {852, 1250}, "sl": {852, 1250},
	"sq": {852, 1250},
	"el": {737, 1253},
	"az": {857, 1254}, "tr": {857, 1254},
	"he": {862, 1255},
	"ar": {720, 1256}, "fa": {720, 1256}, "ur": {720, 1256},
	"et": {775, 1257}, "lt": {775, 1257}, "lv": {775, 1257},
	"vi": {1258, 1258},
	"th": {874, 874},
	"ja": {932, 932},
	"ko": {949, 949},
}

func hostOEMCodePage() int {
	return localeCodePages().oem
}

func hostANSICodePage() int {
	return localeCodePages().ansi
}

func localeCodePages() hostCodePages {
	tag, ok := localeTag()
	if !ok {
		return hostCodePages{invariantOEM, invariantANSI}
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	switch base.String() {
	case "en":
		if r := region.String(); r != "US" && r != "ZZ" {
			return hostCodePages{850, 1252}
		}
		return hostCodePages{invariantOEM, invariantANSI}
	case "zh":
		switch region.String() {
		case "TW", "HK", "MO":
			return hostCodePages{950, 950}
		}
		return hostCodePages{936, 936}
	}
	if cps, ok := languageCodePages[base.String()]; ok {
		return cps
	}
	return hostCodePages{invariantOEM, invariantANSI}
}

// localeTag parses the first non-empty of LC_ALL, LC_CTYPE and LANG, e.g.
// "ru_RU.UTF-8@euro".
func localeTag() (language.Tag, bool) {
	var locale string
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			locale = v
			break
		}
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
