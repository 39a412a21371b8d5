package localedata

import "sort"

// Marker names one category of locale data, e.g. cardinal plural rules or
// decimal number symbols. Markers form a closed registry: unrecognized
// names are rejected at the boundary by ParseMarker, never silently kept.
type Marker string

const (
	MarkerPluralsCardinal   Marker = "plurals/cardinal"
	MarkerPluralsOrdinal    Marker = "plurals/ordinal"
	MarkerNumberSymbols     Marker = "numbers/symbols"
	MarkerDecimalPatterns   Marker = "numbers/decimal"
	MarkerCurrencySymbols   Marker = "currency/symbols"
	MarkerDateTimePatterns  Marker = "datetime/patterns"
	MarkerDateTimeSymbols   Marker = "datetime/symbols"
	MarkerRelativeTime      Marker = "relativetime/patterns"
	MarkerDurationUnits     Marker = "duration/units"
	MarkerListPatterns      Marker = "list/patterns"
	MarkerCollation         Marker = "collation/tailoring"
	MarkerDisplayLanguages  Marker = "displaynames/languages"
	MarkerDisplayScripts    Marker = "displaynames/scripts"
	MarkerDisplayRegions    Marker = "displaynames/regions"
	MarkerSegmenterGrapheme Marker = "segmenter/grapheme"
	MarkerSegmenterWord     Marker = "segmenter/word"
	MarkerSegmenterLine     Marker = "segmenter/line"
	MarkerSegmenterSentence Marker = "segmenter/sentence"
)

var markerRegistry = map[Marker]struct{}{
	MarkerPluralsCardinal:   {},
	MarkerPluralsOrdinal:    {},
	MarkerNumberSymbols:     {},
	MarkerDecimalPatterns:   {},
	MarkerCurrencySymbols:   {},
	MarkerDateTimePatterns:  {},
	MarkerDateTimeSymbols:   {},
	MarkerRelativeTime:      {},
	MarkerDurationUnits:     {},
	MarkerListPatterns:      {},
	MarkerCollation:         {},
	MarkerDisplayLanguages:  {},
	MarkerDisplayScripts:    {},
	MarkerDisplayRegions:    {},
	MarkerSegmenterGrapheme: {},
	MarkerSegmenterWord:     {},
	MarkerSegmenterLine:     {},
	MarkerSegmenterSentence: {},
}

func (m Marker) String() string { return string(m) }

// ParseMarker validates name against the known marker registry.
func ParseMarker(name string) (Marker, error) {
	m := Marker(name)
	if _, ok := markerRegistry[m]; !ok {
		return "", &UnknownMarkerError{Name: name}
	}
	return m, nil
}

// AvailableMarkers returns every known marker name, sorted. Used both for
// generator input validation and for discovery.
func AvailableMarkers() []string {
	names := make([]string, 0, len(markerRegistry))
	for m := range markerRegistry {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}
