package localedata

import (
	"bytes"
	"errors"
	"testing"
)

func TestBlobRoundTrip(t *testing.T) {
	idx := blobIndex{
		"list/patterns": {
			"en":  []byte(`{"standard":{"two":"{0} and {1}"}}`),
			"und": []byte(`{}`),
		},
		"plurals/cardinal": {
			"ja": []byte(`{"other":""}`),
		},
	}

	data, err := encodeBlob(idx)
	if err != nil {
		t.Fatalf("encodeBlob: %v", err)
	}
	if !bytes.HasPrefix(data, blobMagic) {
		t.Fatalf("encoded blob does not start with magic: % x", data[:8])
	}

	decoded, err := decodeBlob(data, "test.blob")
	if err != nil {
		t.Fatalf("decodeBlob: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d markers, want 2", len(decoded))
	}
	got := decoded["list/patterns"]["en"]
	if !bytes.Equal(got, idx["list/patterns"]["en"]) {
		t.Fatalf("payload changed across round trip: %q", got)
	}
}

func TestDecodeBlobRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short", data: []byte("GL")},
		{name: "bad magic", data: []byte("NOPE\x01rest")},
		{name: "bad version", data: append(append([]byte{}, blobMagic...), 99)},
		{name: "bad frame", data: append(append(append([]byte{}, blobMagic...), blobVersion), []byte("not zstd")...)},
	}

	for _, tc := range tests {
		_, err := decodeBlob(tc.data, "bad.blob")
		if err == nil {
			t.Fatalf("decodeBlob(%s) succeeded", tc.name)
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("decodeBlob(%s) error = %T, want *FormatError", tc.name, err)
		}
		if ferr.Path != "bad.blob" {
			t.Fatalf("decodeBlob(%s) path = %q", tc.name, ferr.Path)
		}
	}
}

func TestBlobIndexListings(t *testing.T) {
	idx := blobIndex{
		"list/patterns":    {"ja": nil, "en": nil},
		"plurals/cardinal": {"en": nil, "und": nil},
	}

	if got := idx.markers(); !equalStrings(got, []string{"list/patterns", "plurals/cardinal"}) {
		t.Fatalf("markers() = %v", got)
	}
	if got := idx.locales(); !equalStrings(got, []string{"en", "ja", "und"}) {
		t.Fatalf("locales() = %v", got)
	}
}
