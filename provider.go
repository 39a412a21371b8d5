package localedata

import (
	"os"
	"sync/atomic"
)

// Provider is the single lookup contract every formatting consumer depends
// on: payload bytes for an exact or fallback resolved (marker, locale) key.
type Provider interface {
	Lookup(marker Marker, locale Locale) ([]byte, error)
}

// DataProvider serves exact match (marker, locale) lookups from an
// in-memory index populated once, at construction, from a blob file.
// The index is immutable afterwards and safe for unsynchronized concurrent
// reads. Wrapping a DataProvider in a FallbackProvider transfers ownership:
// the original handle is permanently marked consumed and any further direct
// use fails with ErrProviderConsumed.
type DataProvider struct {
	index    blobIndex
	markers  []string
	locales  []string
	consumed atomic.Bool
}

var _ Provider = (*DataProvider)(nil)

// NewProviderFromBlob reads the whole file at path and deserializes it into
// the lookup index. An unreadable file fails with *LoadError; bytes that do
// not form a compatible blob fail with *FormatError.
func NewProviderFromBlob(path string) (*DataProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	idx, err := decodeBlob(data, path)
	if err != nil {
		return nil, err
	}

	return &DataProvider{
		index:   idx,
		markers: idx.markers(),
		locales: idx.locales(),
	}, nil
}

// Lookup returns the payload for the exact (marker, locale) key. There is
// no hierarchy walking at this layer; a miss is *NotFoundError.
func (p *DataProvider) Lookup(marker Marker, locale Locale) ([]byte, error) {
	if p.consumed.Load() {
		return nil, ErrProviderConsumed
	}
	payload, ok := p.get(marker, locale)
	if !ok {
		return nil, &NotFoundError{Marker: marker, Locale: locale}
	}
	return payload, nil
}

// get performs the raw index probe. Shared with the fallback wrapper, which
// owns the provider after consume and bypasses the consumed check.
func (p *DataProvider) get(marker Marker, locale Locale) ([]byte, bool) {
	byLocale, ok := p.index[string(marker)]
	if !ok {
		return nil, false
	}
	payload, ok := byLocale[locale.String()]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true
}

// Markers returns the marker names present in the blob, sorted.
func (p *DataProvider) Markers() []string {
	out := make([]string, len(p.markers))
	copy(out, p.markers)
	return out
}

// Locales returns the canonical locale strings present in the blob, sorted.
func (p *DataProvider) Locales() []string {
	out := make([]string, len(p.locales))
	copy(out, p.locales)
	return out
}

// consume atomically marks the handle as transferred. The first caller
// wins; every later attempt observes ErrProviderConsumed.
func (p *DataProvider) consume() error {
	if !p.consumed.CompareAndSwap(false, true) {
		return ErrProviderConsumed
	}
	return nil
}
