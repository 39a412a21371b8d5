// Command localedata-export resolves a locale and marker selection against
// a CLDR core data tree and writes the result as a single locale data blob.
//
// Usage:
//
//	localedata-export -cldr /path/to/cldr-core -coverage modern -markers all -out locale.blob
//	localedata-export -cldr /path/to/cldr-core -locale en -locale ja-JP -markers plurals/cardinal,list/patterns -out locale.blob
//	localedata-export -config export.toml
//
// The CLDR directory may also come from the CLDR_CORE_DIR environment
// variable. Flags override values from the TOML config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	localedata "github.com/goliatone/go-localedata"
)

type exportConfig struct {
	CLDRPath string   `toml:"cldr"`
	Coverage string   `toml:"coverage"`
	Locales  []string `toml:"locales"`
	Markers  []string `toml:"markers"`
	Format   string   `toml:"format"`
	Output   string   `toml:"output"`
	Verbose  bool     `toml:"verbose"`
}

type repeatFlag struct {
	items []string
}

func (f *repeatFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *repeatFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "localedata-export: %v\n", err)
	os.Exit(1)
}

func parseFlags() (exportConfig, error) {
	var (
		cfg        exportConfig
		configPath string
		locales    repeatFlag
		markers    repeatFlag
	)

	flag.StringVar(&configPath, "config", "", "path to a TOML export config")
	flag.StringVar(&cfg.CLDRPath, "cldr", "", "path to the CLDR core data directory (defaults to CLDR_CORE_DIR)")
	flag.StringVar(&cfg.Coverage, "coverage", "", "coverage level selector: full, recommended, modern, moderate or basic")
	flag.Var(&locales, "locale", "explicit locale to export; repeat or comma separate to add more (mutually exclusive with -coverage)")
	flag.Var(&markers, "markers", "marker names to export, or \"all\"")
	flag.StringVar(&cfg.Format, "format", "", "output format (default \"blob\")")
	flag.StringVar(&cfg.Output, "out", "", "path of the blob file to write")
	flag.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")

	listMarkers := flag.Bool("list-markers", false, "print every known marker name and exit")

	flag.Parse()

	if *listMarkers {
		for _, name := range localedata.AvailableMarkers() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if configPath != "" {
		var fileCfg exportConfig
		if _, err := toml.DecodeFile(configPath, &fileCfg); err != nil {
			return exportConfig{}, fmt.Errorf("decode config %s: %w", configPath, err)
		}
		cfg = mergeConfig(fileCfg, cfg)
	}

	if len(locales.items) > 0 {
		cfg.Locales = locales.items
	}
	if len(markers.items) > 0 {
		cfg.Markers = markers.items
	}

	if cfg.CLDRPath == "" {
		cfg.CLDRPath = os.Getenv("CLDR_CORE_DIR")
	}

	cfg = applyDefaults(cfg)
	return cfg, validateConfig(cfg)
}

// mergeConfig overlays flag values on top of the config file values.
func mergeConfig(base, flags exportConfig) exportConfig {
	out := base
	if flags.CLDRPath != "" {
		out.CLDRPath = flags.CLDRPath
	}
	if flags.Coverage != "" {
		out.Coverage = flags.Coverage
	}
	if flags.Format != "" {
		out.Format = flags.Format
	}
	if flags.Output != "" {
		out.Output = flags.Output
	}
	if flags.Verbose {
		out.Verbose = true
	}
	return out
}

func validateConfig(cfg exportConfig) error {
	if cfg.CLDRPath == "" {
		return errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}
	if cfg.Output == "" {
		return errors.New("missing output path (set -out)")
	}
	if cfg.Coverage == "" && len(cfg.Locales) == 0 {
		return errors.New("select locales with -coverage or -locale")
	}
	if cfg.Coverage != "" && len(cfg.Locales) > 0 {
		return errors.New("-coverage and -locale are mutually exclusive")
	}
	if len(cfg.Markers) == 0 {
		return errors.New("select markers with -markers (or \"all\")")
	}
	return nil
}

func applyDefaults(cfg exportConfig) exportConfig {
	if cfg.Format == "" {
		cfg.Format = string(localedata.FormatBlob)
	}
	return cfg
}

func run(cfg exportConfig) error {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	localedata.Logger = logger.With().Str("sys", "localedata").Logger()

	format, err := localedata.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var localeSel localedata.LocaleSelection
	if cfg.Coverage != "" {
		coverage, err := localedata.ParseCoverageLevel(cfg.Coverage)
		if err != nil {
			return err
		}
		localeSel = localedata.CoverageLocales(coverage)
	} else {
		localeSel = localedata.ExplicitLocales(cfg.Locales...)
	}

	markerSel := localedata.MarkerNames(cfg.Markers...)
	if len(cfg.Markers) == 1 && cfg.Markers[0] == "all" {
		markerSel = localedata.AllMarkers()
	}

	source, err := localedata.NewCLDRSource(cfg.CLDRPath)
	if err != nil {
		return err
	}

	generator, err := localedata.NewGenerator(source)
	if err != nil {
		return err
	}

	return generator.Export(localedata.ExportRequest{
		Locales: localeSel,
		Markers: markerSel,
		Format:  format,
		Output:  cfg.Output,
	})
}
