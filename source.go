package localedata

import "sort"

// Source is the export backend the generator drives: it enumerates the
// locales it has data for and materializes one payload per (marker, locale)
// pair. A payload absent from the backend is reported with ok=false, not an
// error; errors are reserved for backend failures.
type Source interface {
	// Locales returns every locale the backend knows data for.
	Locales() ([]Locale, error)
	// Payload materializes the data for one (marker, locale) pair.
	Payload(marker Marker, locale Locale) (payload []byte, ok bool, err error)
}

// StaticSource is an in-memory Source seeded programmatically. It backs
// tests and callers that already hold materialized payloads.
type StaticSource struct {
	entries map[Marker]map[string][]byte
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource returns an empty in-memory source.
func NewStaticSource() *StaticSource {
	return &StaticSource{entries: make(map[Marker]map[string][]byte)}
}

// Add registers payload for (marker, locale), replacing any previous entry.
// The payload is copied; later mutation of the argument does not leak in.
func (s *StaticSource) Add(marker Marker, locale Locale, payload []byte) *StaticSource {
	byLocale, ok := s.entries[marker]
	if !ok {
		byLocale = make(map[string][]byte)
		s.entries[marker] = byLocale
	}
	byLocale[locale.String()] = append([]byte(nil), payload...)
	return s
}

// Locales returns every locale with at least one payload, sorted by
// canonical string for determinism.
func (s *StaticSource) Locales() ([]Locale, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, byLocale := range s.entries {
		for name := range byLocale {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)

	locales := make([]Locale, 0, len(names))
	for _, name := range names {
		loc, err := ParseLocale(name)
		if err != nil {
			return nil, err
		}
		locales = append(locales, loc)
	}
	return locales, nil
}

// Payload returns the registered bytes for (marker, locale).
func (s *StaticSource) Payload(marker Marker, locale Locale) ([]byte, bool, error) {
	byLocale, ok := s.entries[marker]
	if !ok {
		return nil, false, nil
	}
	payload, ok := byLocale[locale.String()]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}
