package localedata

import (
	"errors"
	"fmt"
)

// ErrProviderConsumed indicates that a DataProvider handle was already
// transferred into a FallbackProvider and can no longer be used directly.
var ErrProviderConsumed = errors.New("localedata: provider already consumed by a fallback wrapper")

// ErrNotConfigured indicates that a registry has neither an explicit data
// path nor an environment supplied one. Registry.Get treats the absence of
// configuration as a non-error; callers that require a provider use this.
var ErrNotConfigured = errors.New("localedata: no data path configured")

// SyntaxError reports locale text that does not match the structured tag
// grammar or the POSIX locale convention.
type SyntaxError struct {
	Input  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("localedata: invalid locale %q: %s", e.Input, e.Reason)
}

// LoadError reports an I/O failure while reading a blob file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("localedata: read blob %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FormatError reports a blob whose bytes were read but are structurally
// invalid or carry an incompatible container version.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("localedata: invalid blob: %s", e.Reason)
	}
	return fmt.Sprintf("localedata: invalid blob %s: %s", e.Path, e.Reason)
}

// NotFoundError reports a valid (marker, locale) key with no data behind it.
// A bare DataProvider returns it on an exact miss; a FallbackProvider returns
// it only after exhausting the whole fallback chain including the root.
type NotFoundError struct {
	Marker Marker
	Locale Locale
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("localedata: no data for marker %q locale %q", e.Marker, e.Locale)
}

// UnknownMarkerError reports a marker name missing from the known registry.
type UnknownMarkerError struct {
	Name string
}

func (e *UnknownMarkerError) Error() string {
	return fmt.Sprintf("localedata: unknown marker %q (see AvailableMarkers)", e.Name)
}

// InvalidLocaleError reports a malformed entry in an explicit locale list
// handed to the generator.
type InvalidLocaleError struct {
	Input string
	Err   error
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("localedata: invalid locale %q in export selection: %v", e.Input, e.Err)
}

func (e *InvalidLocaleError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports an export format other than the single
// file blob container.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("localedata: unsupported export format %q (only %q is supported)", e.Format, FormatBlob)
}
