package localedata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/cldr"
)

// CLDRSource materializes export payloads from a CLDR core data tree (the
// directory layout with main/ and supplemental/ subdirectories). It covers
// the markers derivable from those sections: plural rules, list patterns,
// duration unit names and display names. Markers whose data lives outside
// the core XML (collation tailorings, segmenter rules, number and datetime
// patterns) are reported as absent; exports needing them use a source
// seeded with prebuilt payloads, such as StaticSource.
type CLDRSource struct {
	data *cldr.CLDR
}

var _ Source = (*CLDRSource)(nil)

// NewCLDRSource decodes the CLDR tree rooted at path.
func NewCLDRSource(path string) (*CLDRSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("localedata: stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("localedata: CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("localedata: decode CLDR data: %w", err)
	}
	return &CLDRSource{data: data}, nil
}

// ListPatternsPayload is the decoded form of a list/patterns payload.
type ListPatternsPayload struct {
	Pair   string `json:"pair"`
	Start  string `json:"start"`
	Middle string `json:"middle"`
	End    string `json:"end"`
}

// PluralRulesPayload maps plural count keywords to their rule conditions.
type PluralRulesPayload struct {
	Rules map[string]string `json:"rules"`
}

// DurationUnitsPayload maps unit identifiers to localized display names.
type DurationUnitsPayload struct {
	Units map[string]string `json:"units"`
}

// DisplayNamesPayload maps subtag codes to localized display names.
type DisplayNamesPayload struct {
	Names map[string]string `json:"names"`
}

// Locales enumerates every locale the decoded CLDR tree carries.
func (s *CLDRSource) Locales() ([]Locale, error) {
	var out []Locale
	for _, name := range s.data.Locales() {
		loc, err := ParseLocale(name)
		if err != nil {
			// CLDR ships a handful of identifiers outside the supported
			// grammar (variant locales); those are skipped, not fatal.
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

// Payload materializes the data for one (marker, locale) pair from the
// decoded tree.
func (s *CLDRSource) Payload(marker Marker, locale Locale) ([]byte, bool, error) {
	switch marker {
	case MarkerPluralsCardinal:
		return s.pluralPayload("cardinal", locale)
	case MarkerPluralsOrdinal:
		return s.pluralPayload("ordinal", locale)
	case MarkerListPatterns:
		return s.listPatternsPayload(locale)
	case MarkerDurationUnits:
		return s.durationUnitsPayload(locale)
	case MarkerDisplayLanguages:
		return s.displayNamesPayload(locale, "languages")
	case MarkerDisplayScripts:
		return s.displayNamesPayload(locale, "scripts")
	case MarkerDisplayRegions:
		return s.displayNamesPayload(locale, "territories")
	default:
		return nil, false, nil
	}
}

// ldml returns the raw LDML document for exactly this locale. No bundle
// inheritance walk happens here: ancestors are exported as their own
// entries and the fallback layer walks the hierarchy at runtime.
func (s *CLDRSource) ldml(locale Locale) *cldr.LDML {
	name := strings.ReplaceAll(locale.coreString(), "-", "_")
	if name == "und" {
		name = "root"
	}
	return s.data.RawLDML(name)
}

func (s *CLDRSource) pluralPayload(kind string, locale Locale) ([]byte, bool, error) {
	supplemental := s.data.Supplemental()
	if supplemental == nil {
		return nil, false, nil
	}

	// Plural rules are keyed by bare language in the supplemental data.
	want := locale.Language()
	if want == "" {
		want = "und"
	}
	if locale.Script() != "" || locale.Region() != "" {
		// Rules attach at the language level only; more specific locales
		// inherit through the fallback chain.
		return nil, false, nil
	}

	for _, plurals := range supplemental.Plurals {
		if plurals == nil || plurals.Type != kind {
			continue
		}
		for _, ruleSet := range plurals.PluralRules {
			if ruleSet == nil {
				continue
			}
			matched := false
			for _, name := range strings.Fields(ruleSet.Locales) {
				if strings.ReplaceAll(name, "_", "-") == want {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}

			payload := PluralRulesPayload{Rules: make(map[string]string, len(ruleSet.PluralRule))}
			for _, rule := range ruleSet.PluralRule {
				if rule == nil || rule.Count == "" {
					continue
				}
				payload.Rules[rule.Count] = rule.Data()
			}
			if len(payload.Rules) == 0 {
				return nil, false, nil
			}
			return marshalPayload(payload)
		}
	}
	return nil, false, nil
}

func (s *CLDRSource) listPatternsPayload(locale Locale) ([]byte, bool, error) {
	ldml := s.ldml(locale)
	if ldml == nil || ldml.ListPatterns == nil {
		return nil, false, nil
	}

	var payload ListPatternsPayload
	for _, pattern := range ldml.ListPatterns.ListPattern {
		if pattern == nil {
			continue
		}
		common := pattern.GetCommon()
		if common != nil && common.Type != "" && common.Type != "standard" {
			continue
		}

		for _, part := range pattern.ListPatternPart {
			if part == nil {
				continue
			}
			switch strings.ToLower(part.Type) {
			case "2":
				payload.Pair = part.Data()
			case "start":
				payload.Start = part.Data()
			case "middle":
				payload.Middle = part.Data()
			case "end":
				payload.End = part.Data()
			}
		}

		if payload.Pair != "" {
			break
		}
	}

	if payload == (ListPatternsPayload{}) {
		return nil, false, nil
	}
	return marshalPayload(payload)
}

func (s *CLDRSource) durationUnitsPayload(locale Locale) ([]byte, bool, error) {
	ldml := s.ldml(locale)
	if ldml == nil || ldml.Units == nil {
		return nil, false, nil
	}

	payload := DurationUnitsPayload{Units: make(map[string]string)}
	for _, length := range ldml.Units.UnitLength {
		if length == nil {
			continue
		}
		common := length.GetCommon()
		if common != nil && common.Type != "" && common.Type != "long" {
			continue
		}

		for _, unit := range length.Unit {
			if unit == nil {
				continue
			}
			unitType := ""
			if c := unit.GetCommon(); c != nil {
				unitType = c.Type
			}
			if !strings.HasPrefix(unitType, "duration-") {
				continue
			}
			name := pickUnitDisplayName(unit.DisplayName)
			if name == "" {
				continue
			}
			payload.Units[strings.TrimPrefix(unitType, "duration-")] = name
		}
	}

	if len(payload.Units) == 0 {
		return nil, false, nil
	}
	return marshalPayload(payload)
}

func pickUnitDisplayName(list []*struct {
	cldr.Common
	Count string `xml:"count,attr"`
}) string {
	var fallback string
	for _, entry := range list {
		if entry == nil {
			continue
		}
		if entry.Count == "" || strings.EqualFold(entry.Count, "other") {
			return entry.Data()
		}
		if fallback == "" {
			fallback = entry.Data()
		}
	}
	return fallback
}

func (s *CLDRSource) displayNamesPayload(locale Locale, kind string) ([]byte, bool, error) {
	ldml := s.ldml(locale)
	if ldml == nil || ldml.LocaleDisplayNames == nil {
		return nil, false, nil
	}

	payload := DisplayNamesPayload{Names: make(map[string]string)}
	switch kind {
	case "languages":
		if ldml.LocaleDisplayNames.Languages == nil {
			return nil, false, nil
		}
		for _, entry := range ldml.LocaleDisplayNames.Languages.Language {
			addDisplayName(payload.Names, entry)
		}
	case "scripts":
		if ldml.LocaleDisplayNames.Scripts == nil {
			return nil, false, nil
		}
		for _, entry := range ldml.LocaleDisplayNames.Scripts.Script {
			addDisplayName(payload.Names, entry)
		}
	case "territories":
		if ldml.LocaleDisplayNames.Territories == nil {
			return nil, false, nil
		}
		for _, entry := range ldml.LocaleDisplayNames.Territories.Territory {
			addDisplayName(payload.Names, entry)
		}
	}

	if len(payload.Names) == 0 {
		return nil, false, nil
	}
	return marshalPayload(payload)
}

func addDisplayName(names map[string]string, entry *cldr.Common) {
	if entry == nil || entry.Type == "" {
		return
	}
	// Alternate forms (short, variant) would clobber the standard name.
	if entry.Alt != "" {
		return
	}
	names[entry.Type] = entry.Data()
}

func marshalPayload(v any) ([]byte, bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
