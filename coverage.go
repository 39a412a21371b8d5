package localedata

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// CoverageLevel is a symbolic locale selector backed by the bundled
// coverage table. The vocabulary is closed; ParseCoverageLevel rejects
// anything outside it.
type CoverageLevel string

const (
	// CoverageFull selects every locale the export source knows.
	CoverageFull CoverageLevel = "full"
	// CoverageRecommended is the union of modern, moderate and basic.
	CoverageRecommended CoverageLevel = "recommended"
	CoverageModern      CoverageLevel = "modern"
	CoverageModerate    CoverageLevel = "moderate"
	CoverageBasic       CoverageLevel = "basic"
)

// ParseCoverageLevel validates a coverage symbol.
func ParseCoverageLevel(name string) (CoverageLevel, error) {
	switch CoverageLevel(name) {
	case CoverageFull, CoverageRecommended, CoverageModern, CoverageModerate, CoverageBasic:
		return CoverageLevel(name), nil
	default:
		return "", fmt.Errorf("localedata: unknown coverage level %q (valid: full, recommended, modern, moderate, basic)", name)
	}
}

func (c CoverageLevel) String() string { return string(c) }

//go:embed coverage_data.yaml
var coverageYAML []byte

type coverageTable struct {
	Modern   []string `yaml:"modern"`
	Moderate []string `yaml:"moderate"`
	Basic    []string `yaml:"basic"`
}

var (
	coverageOnce   sync.Once
	coverageLoaded coverageTable
	coverageErr    error
)

func loadCoverageTable() (coverageTable, error) {
	coverageOnce.Do(func() {
		coverageErr = yaml.Unmarshal(coverageYAML, &coverageLoaded)
		if coverageErr != nil {
			coverageErr = fmt.Errorf("localedata: decode bundled coverage table: %w", coverageErr)
		}
	})
	return coverageLoaded, coverageErr
}

// coverageLocales resolves a coverage symbol to parsed locales. CoverageFull
// is handled by the caller against the source, not the bundled table.
func coverageLocales(level CoverageLevel) ([]Locale, error) {
	table, err := loadCoverageTable()
	if err != nil {
		return nil, err
	}

	var names []string
	switch level {
	case CoverageModern:
		names = table.Modern
	case CoverageModerate:
		names = table.Moderate
	case CoverageBasic:
		names = table.Basic
	case CoverageRecommended:
		names = append(names, table.Modern...)
		names = append(names, table.Moderate...)
		names = append(names, table.Basic...)
	default:
		return nil, fmt.Errorf("localedata: coverage level %q has no bundled table", level)
	}

	locales := make([]Locale, 0, len(names))
	for _, name := range names {
		loc, err := ParseLocale(name)
		if err != nil {
			return nil, fmt.Errorf("localedata: bundled coverage table entry %q: %w", name, err)
		}
		locales = append(locales, loc)
	}
	return locales, nil
}
