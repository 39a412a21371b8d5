package localedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/klauspost/compress/zstd"
)

// Blob container layout: a 4 byte magic, one version byte, then a zstd
// frame holding the JSON encoded (marker, locale) index. The container is
// read and written as a whole; there is no partial or streaming access.
var blobMagic = []byte("GLDB")

const blobVersion byte = 1

// blobIndex maps marker name to canonical locale string to payload bytes.
type blobIndex map[string]map[string][]byte

func encodeBlob(idx blobIndex) ([]byte, error) {
	body, err := json.Marshal(idx)
	if err != nil {
		return nil, fmt.Errorf("localedata: encode blob index: %w", err)
	}

	// Nil writer keeps the encoder in stateless block mode for EncodeAll.
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("localedata: init blob encoder: %w", err)
	}
	defer enc.Close()

	out := make([]byte, 0, len(blobMagic)+1+len(body)/2)
	out = append(out, blobMagic...)
	out = append(out, blobVersion)
	return enc.EncodeAll(body, out), nil
}

func decodeBlob(data []byte, path string) (blobIndex, error) {
	if len(data) < len(blobMagic)+1 {
		return nil, &FormatError{Path: path, Reason: "truncated container header"}
	}
	if !bytes.Equal(data[:len(blobMagic)], blobMagic) {
		return nil, &FormatError{Path: path, Reason: "bad magic, not a locale data blob"}
	}
	version := data[len(blobMagic)]
	if version != blobVersion {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("unsupported container version %d (want %d)", version, blobVersion)}
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("init decoder: %v", err)}
	}
	defer dec.Close()

	body, err := dec.DecodeAll(data[len(blobMagic)+1:], nil)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("decompress index: %v", err)}
	}

	var idx blobIndex
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("decode index: %v", err)}
	}
	if idx == nil {
		idx = blobIndex{}
	}
	return idx, nil
}

func (idx blobIndex) markers() []string {
	out := make([]string, 0, len(idx))
	for marker := range idx {
		out = append(out, marker)
	}
	sort.Strings(out)
	return out
}

func (idx blobIndex) locales() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, byLocale := range idx {
		for locale := range byLocale {
			if _, ok := seen[locale]; ok {
				continue
			}
			seen[locale] = struct{}{}
			out = append(out, locale)
		}
	}
	sort.Strings(out)
	return out
}
