package localedata

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Keyword is one Unicode extension key/value pair, e.g. ca=japanese.
type Keyword struct {
	Key   string
	Value string
}

// Locale is an immutable locale identifier: language, script, region and
// extension subtags. The zero value is the root locale "und". Values are
// never mutated after construction; Maximize and Minimize return new values.
// The canonical String form round trips through ParseLocale and is safe to
// use as a map key.
type Locale struct {
	language  string
	script    string
	region    string
	unicode   []Keyword
	transform string
	private   []string
}

// Root is the fallback floor representing "no specific language".
var Root Locale

// ParseLocale parses structured locale tag text such as "ja-JP" or
// "sr-Latn-RS-u-ca-islamic". Underscores are accepted as separators and
// normalized away. Malformed input fails with *SyntaxError.
func ParseLocale(text string) (Locale, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), "_", "-")
	if normalized == "" {
		return Locale{}, &SyntaxError{Input: text, Reason: "empty locale"}
	}

	subtags := strings.Split(strings.ToLower(normalized), "-")

	var loc Locale
	first := subtags[0]
	switch {
	case first == "und" || first == "root":
		// root keeps an empty language
	case isAlpha(first) && len(first) >= 2 && len(first) <= 3:
		loc.language = first
	default:
		return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("invalid language subtag %q", first)}
	}

	i := 1
	if i < len(subtags) && len(subtags[i]) == 4 && isAlpha(subtags[i]) {
		loc.script = titleCase(subtags[i])
		i++
	}
	if i < len(subtags) {
		s := subtags[i]
		if (len(s) == 2 && isAlpha(s)) || (len(s) == 3 && isDigits(s)) {
			loc.region = strings.ToUpper(s)
			i++
		}
	}

	seen := map[string]bool{}
	for i < len(subtags) {
		singleton := subtags[i]
		if len(singleton) != 1 {
			return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("unexpected subtag %q", singleton)}
		}
		if seen[singleton] {
			return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("duplicate extension singleton %q", singleton)}
		}
		seen[singleton] = true
		i++

		start := i
		for i < len(subtags) && len(subtags[i]) > 1 {
			if !isAlphaNum(subtags[i]) || len(subtags[i]) > 8 {
				return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("invalid extension subtag %q", subtags[i])}
			}
			i++
		}
		if start == i {
			return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("empty extension %q", singleton)}
		}

		body := subtags[start:i]
		switch singleton {
		case "u":
			keywords, err := parseUnicodeKeywords(text, body)
			if err != nil {
				return Locale{}, err
			}
			loc.unicode = keywords
		case "t":
			loc.transform = strings.Join(body, "-")
		case "x":
			loc.private = append([]string(nil), body...)
		default:
			return Locale{}, &SyntaxError{Input: text, Reason: fmt.Sprintf("unsupported extension singleton %q", singleton)}
		}
	}

	return loc, nil
}

// MustParseLocale is ParseLocale that panics on malformed input. Intended
// for static locale literals.
func MustParseLocale(text string) Locale {
	loc, err := ParseLocale(text)
	if err != nil {
		panic(err)
	}
	return loc
}

func parseUnicodeKeywords(input string, body []string) ([]Keyword, error) {
	var keywords []Keyword
	idx := -1
	for _, subtag := range body {
		if len(subtag) == 2 {
			keywords = append(keywords, Keyword{Key: subtag})
			idx = len(keywords) - 1
			continue
		}
		if idx < 0 {
			return nil, &SyntaxError{Input: input, Reason: fmt.Sprintf("unicode extension value %q before any key", subtag)}
		}
		if keywords[idx].Value == "" {
			keywords[idx].Value = subtag
		} else {
			keywords[idx].Value += "-" + subtag
		}
	}
	return keywords, nil
}

// ParsePosix converts a legacy POSIX locale string of the form
// language[_REGION][.codeset][@modifier]. The codeset is discarded, the
// @latin and @cyrillic modifiers map to the Latn and Cyrl scripts, other
// modifiers are ignored, and "C"/"POSIX" map to the root locale.
func ParsePosix(text string) (Locale, error) {
	if text == "C" || text == "POSIX" {
		return Root, nil
	}
	if strings.TrimSpace(text) == "" {
		return Locale{}, &SyntaxError{Input: text, Reason: "empty locale"}
	}

	input := text
	modifier := ""
	if at := strings.IndexByte(input, '@'); at >= 0 {
		modifier = strings.ToLower(input[at+1:])
		input = input[:at]
	}
	if dot := strings.IndexByte(input, '.'); dot >= 0 {
		input = input[:dot]
	}

	parts := strings.Split(input, "_")
	lang := strings.ToLower(strings.TrimSpace(parts[0]))
	if lang == "" {
		return Locale{}, &SyntaxError{Input: text, Reason: "missing language"}
	}

	tag := lang
	switch modifier {
	case "latin":
		tag += "-Latn"
	case "cyrillic":
		tag += "-Cyrl"
	}
	if len(parts) > 1 {
		region := strings.ToUpper(strings.TrimSpace(parts[1]))
		if region != "" {
			tag += "-" + region
		}
	}

	loc, err := ParseLocale(tag)
	if err != nil {
		var syn *SyntaxError
		if errors.As(err, &syn) {
			return Locale{}, &SyntaxError{Input: text, Reason: syn.Reason}
		}
		return Locale{}, err
	}
	return loc, nil
}

// Language returns the language subtag, or "" for the root locale.
func (l Locale) Language() string { return l.language }

// Script returns the script subtag, or "" when absent.
func (l Locale) Script() string { return l.script }

// Region returns the region subtag, or "" when absent.
func (l Locale) Region() string { return l.region }

// Extensions returns the ordered Unicode extension keywords.
func (l Locale) Extensions() []Keyword {
	if len(l.unicode) == 0 {
		return nil
	}
	out := make([]Keyword, len(l.unicode))
	copy(out, l.unicode)
	return out
}

// Transform returns the transform extension body, or "" when absent.
func (l Locale) Transform() string { return l.transform }

// Private returns the private use subtags.
func (l Locale) Private() []string {
	if len(l.private) == 0 {
		return nil
	}
	out := make([]string, len(l.private))
	copy(out, l.private)
	return out
}

// IsRoot reports whether l is the root locale "und" with no extensions.
func (l Locale) IsRoot() bool {
	return l.language == "" && l.script == "" && l.region == "" &&
		len(l.unicode) == 0 && l.transform == "" && len(l.private) == 0
}

// String renders the canonical form. Extension singletons appear in
// alphabetical order (t, u, x) so that equal locales render identically.
func (l Locale) String() string {
	var b strings.Builder
	if l.language == "" {
		b.WriteString("und")
	} else {
		b.WriteString(l.language)
	}
	if l.script != "" {
		b.WriteByte('-')
		b.WriteString(l.script)
	}
	if l.region != "" {
		b.WriteByte('-')
		b.WriteString(l.region)
	}
	if l.transform != "" {
		b.WriteString("-t-")
		b.WriteString(l.transform)
	}
	if len(l.unicode) > 0 {
		b.WriteString("-u")
		for _, kw := range l.unicode {
			b.WriteByte('-')
			b.WriteString(kw.Key)
			if kw.Value != "" {
				b.WriteByte('-')
				b.WriteString(kw.Value)
			}
		}
	}
	if len(l.private) > 0 {
		b.WriteString("-x")
		for _, p := range l.private {
			b.WriteByte('-')
			b.WriteString(p)
		}
	}
	return b.String()
}

// Equal reports structural equality over the canonical string form.
func (l Locale) Equal(other Locale) bool {
	return l.String() == other.String()
}

// Maximize fills in the most likely script and region subtags using the
// likely subtags data carried by golang.org/x/text. It reports whether
// anything was added; the root locale is returned unchanged since there is
// no anchor to infer from. Extensions are preserved as-is.
func (l Locale) Maximize() (Locale, bool) {
	if l.language == "" && l.script == "" && l.region == "" {
		return l, false
	}

	tag := language.Make(l.coreString())
	out := l
	changed := false

	if out.language == "" {
		if base, conf := tag.Base(); conf > language.No {
			if v := base.String(); v != "" && v != "und" {
				out.language = v
				changed = true
			}
		}
	}
	if out.script == "" {
		if script, conf := tag.Script(); conf > language.No {
			if v := script.String(); v != "" && v != "Zzzz" {
				out.script = v
				changed = true
			}
		}
	}
	if out.region == "" {
		if region, conf := tag.Region(); conf > language.No {
			if v := region.String(); v != "" && v != "ZZ" {
				out.region = v
				changed = true
			}
		}
	}

	return out, changed
}

// Minimize drops every subtag Maximize would re-derive, keeping the shortest
// form with the same likely expansion. The language subtag is never changed.
// It reports whether anything was removed.
func (l Locale) Minimize() (Locale, bool) {
	if l.script == "" && l.region == "" {
		return l, false
	}

	full, _ := l.Maximize()

	// Favored candidate order per the remove likely subtags algorithm:
	// language alone, then language-region, then language-script.
	candidates := []Locale{
		{language: l.language},
		{language: l.language, region: full.region},
		{language: l.language, script: full.script},
	}

	for _, cand := range candidates {
		max, _ := cand.Maximize()
		if !max.sameCore(full) {
			continue
		}
		if cand.sameCore(l) {
			return l, false
		}
		out := l
		out.script = cand.script
		out.region = cand.region
		return out, true
	}

	return l, false
}

func (l Locale) coreString() string {
	var b strings.Builder
	if l.language == "" {
		b.WriteString("und")
	} else {
		b.WriteString(l.language)
	}
	if l.script != "" {
		b.WriteByte('-')
		b.WriteString(l.script)
	}
	if l.region != "" {
		b.WriteByte('-')
		b.WriteString(l.region)
	}
	return b.String()
}

func (l Locale) sameCore(other Locale) bool {
	return l.language == other.language && l.script == other.script && l.region == other.region
}

// withoutExtensions keeps only the core subtags. Fallback data is extension
// agnostic, so the chain is computed over this form.
func (l Locale) withoutExtensions() Locale {
	return Locale{language: l.language, script: l.script, region: l.region}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
