package localedata

import (
	"errors"
	"sort"
	"testing"
)

func TestParseMarker(t *testing.T) {
	m, err := ParseMarker("plurals/cardinal")
	if err != nil {
		t.Fatalf("ParseMarker: %v", err)
	}
	if m != MarkerPluralsCardinal {
		t.Fatalf("ParseMarker = %q", m)
	}
}

func TestParseMarkerUnknown(t *testing.T) {
	_, err := ParseMarker("plurals/bogus")
	if err == nil {
		t.Fatal("ParseMarker accepted an unknown name")
	}
	var uerr *UnknownMarkerError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %T, want *UnknownMarkerError", err)
	}
	if uerr.Name != "plurals/bogus" {
		t.Fatalf("UnknownMarkerError.Name = %q", uerr.Name)
	}
}

func TestAvailableMarkersSorted(t *testing.T) {
	names := AvailableMarkers()
	if len(names) != len(markerRegistry) {
		t.Fatalf("AvailableMarkers returned %d names, registry has %d", len(names), len(markerRegistry))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("AvailableMarkers not sorted: %v", names)
	}
	for _, name := range names {
		if _, err := ParseMarker(name); err != nil {
			t.Fatalf("round trip of %q: %v", name, err)
		}
	}
}
