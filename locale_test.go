package localedata

import (
	"errors"
	"testing"
)

func TestParseLocaleRoundTrip(t *testing.T) {
	tests := []string{
		"und",
		"en",
		"en-US",
		"en-Latn-US",
		"ja-JP",
		"sr-Latn-RS",
		"zh-Hant",
		"es-419",
		"ja-JP-u-ca-japanese",
		"th-TH-u-ca-buddhist-nu-thai",
		"en-t-es",
		"en-x-private",
		"de-CH-t-en-u-co-phonebk-x-test",
	}

	for _, input := range tests {
		loc, err := ParseLocale(input)
		if err != nil {
			t.Fatalf("ParseLocale(%q): %v", input, err)
		}
		reparsed, err := ParseLocale(loc.String())
		if err != nil {
			t.Fatalf("ParseLocale(%q) of canonical form: %v", loc.String(), err)
		}
		if !loc.Equal(reparsed) {
			t.Fatalf("round trip of %q: %q != %q", input, loc, reparsed)
		}
	}
}

func TestParseLocaleNormalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "en_us", want: "en-US"},
		{input: "SR-latn-rs", want: "sr-Latn-RS"},
		{input: "root", want: "und"},
		{input: " ja-jp ", want: "ja-JP"},
		{input: "ES-419", want: "es-419"},
	}

	for _, tc := range tests {
		loc, err := ParseLocale(tc.input)
		if err != nil {
			t.Fatalf("ParseLocale(%q): %v", tc.input, err)
		}
		if got := loc.String(); got != tc.want {
			t.Fatalf("ParseLocale(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseLocaleRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"-",
		"123",
		"toolonglanguage",
		"en-US-u",
		"en-q-abc",
		"en-u-ca-u-nu",
		"en-Latn-US-whatever",
	}

	for _, input := range tests {
		_, err := ParseLocale(input)
		if err == nil {
			t.Fatalf("ParseLocale(%q) succeeded, want *SyntaxError", input)
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Fatalf("ParseLocale(%q) error = %T, want *SyntaxError", input, err)
		}
	}
}

func TestLocaleComponents(t *testing.T) {
	loc := MustParseLocale("th-TH-u-ca-buddhist-nu-thai-x-priv")

	if got := loc.Language(); got != "th" {
		t.Fatalf("Language() = %q", got)
	}
	if got := loc.Script(); got != "" {
		t.Fatalf("Script() = %q", got)
	}
	if got := loc.Region(); got != "TH" {
		t.Fatalf("Region() = %q", got)
	}

	ext := loc.Extensions()
	if len(ext) != 2 || ext[0] != (Keyword{Key: "ca", Value: "buddhist"}) || ext[1] != (Keyword{Key: "nu", Value: "thai"}) {
		t.Fatalf("Extensions() = %v", ext)
	}

	if got := loc.Private(); len(got) != 1 || got[0] != "priv" {
		t.Fatalf("Private() = %v", got)
	}
}

func TestParsePosix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "C", want: "und"},
		{input: "POSIX", want: "und"},
		{input: "ja_JP.UTF-8", want: "ja-JP"},
		{input: "en_US", want: "en-US"},
		{input: "sr_RS@latin", want: "sr-Latn-RS"},
		{input: "sr_RS@cyrillic", want: "sr-Cyrl-RS"},
		{input: "de_DE.ISO-8859-1@euro", want: "de-DE"},
		{input: "fr", want: "fr"},
	}

	for _, tc := range tests {
		loc, err := ParsePosix(tc.input)
		if err != nil {
			t.Fatalf("ParsePosix(%q): %v", tc.input, err)
		}
		if got := loc.String(); got != tc.want {
			t.Fatalf("ParsePosix(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParsePosixRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "  ", "_US", ".UTF-8"} {
		if _, err := ParsePosix(input); err == nil {
			t.Fatalf("ParsePosix(%q) succeeded, want error", input)
		}
	}
}

func TestMaximize(t *testing.T) {
	tests := []struct {
		input       string
		wantChanged bool
	}{
		{input: "ja", wantChanged: true},
		{input: "en", wantChanged: true},
		{input: "und", wantChanged: false},
	}

	for _, tc := range tests {
		loc := MustParseLocale(tc.input)
		maxed, changed := loc.Maximize()
		if changed != tc.wantChanged {
			t.Fatalf("Maximize(%q) changed = %v, want %v (got %q)", tc.input, changed, tc.wantChanged, maxed)
		}
		if changed && (maxed.Script() == "" || maxed.Region() == "") {
			t.Fatalf("Maximize(%q) = %q, expected script and region filled", tc.input, maxed)
		}
		if maxed.Language() != loc.Language() && loc.Language() != "" {
			t.Fatalf("Maximize(%q) changed language to %q", tc.input, maxed.Language())
		}
	}
}

func TestMaximizeUnchangedWhenFull(t *testing.T) {
	loc := MustParseLocale("ja-Jpan-JP")
	maxed, changed := loc.Maximize()
	if changed {
		t.Fatalf("Maximize(%q) reported a change: %q", loc, maxed)
	}
	if !maxed.Equal(loc) {
		t.Fatalf("Maximize(%q) = %q", loc, maxed)
	}
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		input       string
		want        string
		wantChanged bool
	}{
		{input: "ja-Jpan-JP", want: "ja", wantChanged: true},
		{input: "en-Latn-US", want: "en", wantChanged: true},
		{input: "ja", want: "ja", wantChanged: false},
		{input: "und", want: "und", wantChanged: false},
	}

	for _, tc := range tests {
		loc := MustParseLocale(tc.input)
		minimized, changed := loc.Minimize()
		if changed != tc.wantChanged {
			t.Fatalf("Minimize(%q) changed = %v, want %v", tc.input, changed, tc.wantChanged)
		}
		if got := minimized.String(); got != tc.want {
			t.Fatalf("Minimize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMinimizeMaximizeKeepsLanguage(t *testing.T) {
	for _, input := range []string{"en", "ja-JP", "sr-Latn-RS", "zh-Hant", "es-419", "ko-KR"} {
		loc := MustParseLocale(input)
		maxed, _ := loc.Maximize()
		minimized, _ := maxed.Minimize()
		if minimized.Language() != loc.Language() {
			t.Fatalf("minimize(maximize(%q)) changed language: %q", input, minimized.Language())
		}
	}
}

func TestMaximizePreservesExtensions(t *testing.T) {
	loc := MustParseLocale("ja-u-ca-japanese")
	maxed, changed := loc.Maximize()
	if !changed {
		t.Fatalf("Maximize(%q) reported no change", loc)
	}
	ext := maxed.Extensions()
	if len(ext) != 1 || ext[0].Key != "ca" || ext[0].Value != "japanese" {
		t.Fatalf("Maximize dropped extensions: %v", ext)
	}
}

func TestLocaleEqual(t *testing.T) {
	a := MustParseLocale("en_us")
	b := MustParseLocale("en-US")
	if !a.Equal(b) {
		t.Fatalf("%q != %q", a, b)
	}
	if a.Equal(MustParseLocale("en-GB")) {
		t.Fatal("en-US compared equal to en-GB")
	}
}

func TestIsRoot(t *testing.T) {
	if !Root.IsRoot() {
		t.Fatal("Root.IsRoot() = false")
	}
	if !MustParseLocale("und").IsRoot() {
		t.Fatal(`MustParseLocale("und").IsRoot() = false`)
	}
	if MustParseLocale("und-u-ca-japanese").IsRoot() {
		t.Fatal("root with extensions reported as root")
	}
	if MustParseLocale("en").IsRoot() {
		t.Fatal(`"en" reported as root`)
	}
}
