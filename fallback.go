package localedata

import "fmt"

// Priority selects which subtags a fallback chain preserves longest.
type Priority int

const (
	// PriorityLanguage drops region, then script, keeping the language
	// until the final root step: ja-Jpan-JP -> ja-Jpan -> ja -> und.
	PriorityLanguage Priority = iota
	// PriorityRegion drops the script first and keeps the region as long
	// as possible: ja-Jpan-JP -> ja-JP -> und-JP -> und.
	PriorityRegion
)

// ParsePriority maps "language" or "region" to a Priority. Anything else
// is rejected.
func ParsePriority(name string) (Priority, error) {
	switch name {
	case "language":
		return PriorityLanguage, nil
	case "region":
		return PriorityRegion, nil
	default:
		return 0, fmt.Errorf("localedata: priority must be %q or %q, got %q", "language", "region", name)
	}
}

func (p Priority) String() string {
	if p == PriorityRegion {
		return "region"
	}
	return "language"
}

// FallbackChain returns the deterministic sequence of locales probed for
// locale under priority, from most specific to the root. Extension subtags
// are dropped up front since fallback data is extension agnostic. The
// language subtag is never replaced by a different language; the only
// language-less steps are und-R (region priority) and the root itself.
func FallbackChain(locale Locale, priority Priority) []Locale {
	cur := locale.withoutExtensions()
	chain := make([]Locale, 0, 4)

	for !cur.IsRoot() {
		chain = append(chain, cur)
		switch priority {
		case PriorityRegion:
			switch {
			case cur.script != "":
				cur.script = ""
			case cur.language != "" && cur.region != "":
				cur.language = ""
			case cur.region != "":
				cur.region = ""
			default:
				cur.language = ""
			}
		default:
			switch {
			case cur.region != "":
				cur.region = ""
			case cur.script != "":
				cur.script = ""
			default:
				cur.language = ""
			}
		}
	}

	return append(chain, Root)
}

// FallbackProvider decorates exactly one DataProvider with locale hierarchy
// walking. Construction takes ownership of the wrapped provider; the
// decorator is immutable afterwards and safe for concurrent reads.
type FallbackProvider struct {
	inner    *DataProvider
	priority Priority
}

var _ Provider = (*FallbackProvider)(nil)

// Wrap consumes provider and returns the fallback decorator. Wrapping a
// handle that was already consumed fails with ErrProviderConsumed.
func Wrap(provider *DataProvider, priority Priority) (*FallbackProvider, error) {
	if provider == nil {
		return nil, fmt.Errorf("localedata: cannot wrap a nil provider")
	}
	if err := provider.consume(); err != nil {
		return nil, err
	}
	return &FallbackProvider{inner: provider, priority: priority}, nil
}

// Priority returns the fallback priority the decorator was built with.
func (f *FallbackProvider) Priority() Priority { return f.priority }

// Lookup probes the wrapped provider at every step of the fallback chain
// and returns the first hit. Exhausting the chain, root included, yields
// the same *NotFoundError a bare DataProvider produces, so the decorator
// stays substitutable for an unwrapped provider.
func (f *FallbackProvider) Lookup(marker Marker, locale Locale) ([]byte, error) {
	for _, step := range FallbackChain(locale, f.priority) {
		if payload, ok := f.inner.get(marker, step); ok {
			return payload, nil
		}
	}
	return nil, &NotFoundError{Marker: marker, Locale: locale}
}

// Markers reports the marker names present in the wrapped blob.
func (f *FallbackProvider) Markers() []string { return f.inner.Markers() }

// Locales reports the locale strings present in the wrapped blob.
func (f *FallbackProvider) Locales() []string { return f.inner.Locales() }
