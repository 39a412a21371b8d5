package localedata

import (
	"testing"
)

func chainStrings(locale string, priority Priority) []string {
	chain := FallbackChain(MustParseLocale(locale), priority)
	out := make([]string, len(chain))
	for i, loc := range chain {
		out[i] = loc.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFallbackChainLanguagePriority(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "ja-JP", want: []string{"ja-JP", "ja", "und"}},
		{locale: "sr-Latn-RS", want: []string{"sr-Latn-RS", "sr-Latn", "sr", "und"}},
		{locale: "ja", want: []string{"ja", "und"}},
		{locale: "und", want: []string{"und"}},
		{locale: "und-JP", want: []string{"und-JP", "und"}},
		{locale: "zh-Hant", want: []string{"zh-Hant", "zh", "und"}},
	}

	for _, tc := range tests {
		got := chainStrings(tc.locale, PriorityLanguage)
		if !equalStrings(got, tc.want) {
			t.Fatalf("FallbackChain(%q, language) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}

func TestFallbackChainRegionPriority(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "ja-JP", want: []string{"ja-JP", "und-JP", "und"}},
		{locale: "sr-Latn-RS", want: []string{"sr-Latn-RS", "sr-RS", "und-RS", "und"}},
		{locale: "ja", want: []string{"ja", "und"}},
		{locale: "und-JP", want: []string{"und-JP", "und"}},
		{locale: "zh-Hant", want: []string{"zh-Hant", "zh", "und"}},
	}

	for _, tc := range tests {
		got := chainStrings(tc.locale, PriorityRegion)
		if !equalStrings(got, tc.want) {
			t.Fatalf("FallbackChain(%q, region) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}

func TestFallbackChainDropsExtensions(t *testing.T) {
	got := chainStrings("ja-JP-u-ca-japanese", PriorityLanguage)
	want := []string{"ja-JP", "ja", "und"}
	if !equalStrings(got, want) {
		t.Fatalf("FallbackChain with extensions = %v, want %v", got, want)
	}
}

func TestFallbackChainLanguageNeverSwitches(t *testing.T) {
	inputs := []string{"ja-JP", "sr-Latn-RS", "pt-BR", "zh-Hant-HK", "es-419", "und-JP"}

	for _, input := range inputs {
		start := MustParseLocale(input)
		for _, priority := range []Priority{PriorityLanguage, PriorityRegion} {
			for _, step := range FallbackChain(start, priority) {
				lang := step.Language()
				if lang != "" && lang != start.Language() {
					t.Fatalf("FallbackChain(%q, %v) visits foreign language %q", input, priority, lang)
				}
			}
		}
	}
}

func TestFallbackChainEndsWithRoot(t *testing.T) {
	for _, input := range []string{"und", "en", "ja-Jpan-JP-u-ca-japanese"} {
		for _, priority := range []Priority{PriorityLanguage, PriorityRegion} {
			chain := FallbackChain(MustParseLocale(input), priority)
			if len(chain) == 0 || !chain[len(chain)-1].IsRoot() {
				t.Fatalf("FallbackChain(%q, %v) = %v, want root terminal", input, priority, chain)
			}
		}
	}
}

func TestParsePriority(t *testing.T) {
	if got, err := ParsePriority("language"); err != nil || got != PriorityLanguage {
		t.Fatalf("ParsePriority(language) = %v, %v", got, err)
	}
	if got, err := ParsePriority("region"); err != nil || got != PriorityRegion {
		t.Fatalf("ParsePriority(region) = %v, %v", got, err)
	}
	if _, err := ParsePriority("script"); err == nil {
		t.Fatal("ParsePriority(script) succeeded")
	}
}
