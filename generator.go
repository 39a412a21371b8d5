package localedata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

// Format names the serialization a generated payload set is written in.
// Only the single file blob container is supported.
type Format string

const FormatBlob Format = "blob"

// ParseFormat validates an export format name.
func ParseFormat(name string) (Format, error) {
	if Format(name) != FormatBlob {
		return "", &UnsupportedFormatError{Format: name}
	}
	return FormatBlob, nil
}

// LocaleSelection picks the locales an export covers: either an explicit
// list of locale strings, or a coverage symbol resolved against the bundled
// coverage table and augmented with every ancestor down to the root.
type LocaleSelection struct {
	level    CoverageLevel
	explicit []string
}

// CoverageLocales selects every locale at the given coverage level.
func CoverageLocales(level CoverageLevel) LocaleSelection {
	return LocaleSelection{level: level}
}

// ExplicitLocales selects exactly the given locale strings, taken verbatim.
func ExplicitLocales(locales ...string) LocaleSelection {
	return LocaleSelection{explicit: append([]string(nil), locales...)}
}

// MarkerSelection picks the markers an export covers.
type MarkerSelection struct {
	all   bool
	names []string
}

// AllMarkers selects every marker in the registry.
func AllMarkers() MarkerSelection {
	return MarkerSelection{all: true}
}

// MarkerNames selects an explicit marker list, validated at export time
// against the registry.
func MarkerNames(names ...string) MarkerSelection {
	return MarkerSelection{names: append([]string(nil), names...)}
}

// ExportRequest describes one batch export run.
type ExportRequest struct {
	Locales LocaleSelection
	Markers MarkerSelection
	Format  Format
	Output  string
}

// Generator resolves a locale and marker selection, drives an export
// Source, and writes the materialized payload set as one blob file. Export
// is synchronous, blocking, and fail-clean: any validation or backend
// failure leaves no output file behind.
type Generator struct {
	source Source
	logger zerolog.Logger
}

// GeneratorOption mutates a Generator during construction.
type GeneratorOption func(*Generator) error

// WithGeneratorLogger replaces the package logger for one generator.
func WithGeneratorLogger(logger zerolog.Logger) GeneratorOption {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// NewGenerator builds a Generator over the given export source.
func NewGenerator(source Source, opts ...GeneratorOption) (*Generator, error) {
	if source == nil {
		return nil, fmt.Errorf("localedata: generator requires a source")
	}

	g := &Generator{source: source, logger: Logger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AvailableMarkers enumerates every marker name the generator accepts,
// sorted.
func (g *Generator) AvailableMarkers() []string {
	return AvailableMarkers()
}

// Export resolves the request, materializes every (marker, locale) payload
// the source can produce, and writes the blob to req.Output atomically.
// Validation failures surface before anything is written; a resolved locale
// set without the root locale logs a warning but still completes, since the
// produced blob merely lacks a fallback floor.
func (g *Generator) Export(req ExportRequest) error {
	if req.Format != FormatBlob {
		return &UnsupportedFormatError{Format: string(req.Format)}
	}
	if req.Output == "" {
		return fmt.Errorf("localedata: export output path is required")
	}

	markers, err := g.resolveMarkers(req.Markers)
	if err != nil {
		return err
	}

	locales, err := g.resolveLocales(req.Locales)
	if err != nil {
		return err
	}

	hasRoot := false
	for _, loc := range locales {
		if loc.IsRoot() {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		g.logger.Warn().
			Str("output", req.Output).
			Msg("resolved locale set has no root locale; the blob will lack a fallback floor")
	}

	idx := blobIndex{}
	for _, marker := range markers {
		for _, loc := range locales {
			payload, ok, err := g.source.Payload(marker, loc)
			if err != nil {
				return fmt.Errorf("localedata: materialize %s/%s: %w", marker, loc, err)
			}
			if !ok {
				continue
			}
			byLocale, exists := idx[string(marker)]
			if !exists {
				byLocale = make(map[string][]byte)
				idx[string(marker)] = byLocale
			}
			byLocale[loc.String()] = payload
		}
	}

	data, err := encodeBlob(idx)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(req.Output, data); err != nil {
		return err
	}

	g.logger.Info().
		Str("output", req.Output).
		Int("markers", len(idx)).
		Int("locales", len(locales)).
		Int("bytes", len(data)).
		Msg("exported locale data blob")

	return nil
}

func (g *Generator) resolveMarkers(sel MarkerSelection) ([]Marker, error) {
	if sel.all {
		names := AvailableMarkers()
		markers := make([]Marker, len(names))
		for i, name := range names {
			markers[i] = Marker(name)
		}
		return markers, nil
	}
	if len(sel.names) == 0 {
		return nil, fmt.Errorf("localedata: export marker selection is empty")
	}

	markers := make([]Marker, 0, len(sel.names))
	seen := make(map[Marker]struct{}, len(sel.names))
	for _, name := range sel.names {
		m, err := ParseMarker(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		markers = append(markers, m)
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i] < markers[j] })
	return markers, nil
}

func (g *Generator) resolveLocales(sel LocaleSelection) ([]Locale, error) {
	if sel.level == "" && len(sel.explicit) == 0 {
		return nil, fmt.Errorf("localedata: export locale selection is empty")
	}

	// Explicit lists are taken verbatim; a malformed entry aborts, naming
	// the offending string.
	if len(sel.explicit) > 0 {
		locales := make([]Locale, 0, len(sel.explicit))
		for _, raw := range sel.explicit {
			loc, err := ParseLocale(raw)
			if err != nil {
				return nil, &InvalidLocaleError{Input: raw, Err: err}
			}
			locales = append(locales, loc)
		}
		return dedupeLocales(locales), nil
	}

	var selected []Locale
	if sel.level == CoverageFull {
		all, err := g.source.Locales()
		if err != nil {
			return nil, fmt.Errorf("localedata: enumerate source locales: %w", err)
		}
		selected = all
	} else {
		resolved, err := coverageLocales(sel.level)
		if err != nil {
			return nil, err
		}
		selected = resolved
	}

	// A symbolic selection pulls in each locale's whole ancestor chain so
	// the fallback walk at runtime never dead-ends above the data.
	var augmented []Locale
	for _, loc := range selected {
		augmented = append(augmented, FallbackChain(loc, PriorityLanguage)...)
	}
	return dedupeLocales(augmented), nil
}

func dedupeLocales(locales []Locale) []Locale {
	seen := make(map[string]struct{}, len(locales))
	out := make([]Locale, 0, len(locales))
	for _, loc := range locales {
		key := loc.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// writeFileAtomic stages the blob next to its destination and renames it
// into place, so a failed export never leaves a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("localedata: create output directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("localedata: stage output file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("localedata: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localedata: write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localedata: finalize %s: %w", path, err)
	}
	return nil
}
