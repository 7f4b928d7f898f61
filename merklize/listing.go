package merklize

import (
	"bytes"
	"encoding/json"

	"xdao.co/merklize/cidutil"
	"xdao.co/merklize/model"
)

// ModelEntry projects an entry onto its hasher-independent boundary type.
func ModelEntry(e Entry) model.Entry {
	path := make([]any, e.path.Len())
	for i, s := range e.path.segments {
		if s.isIndex {
			path[i] = s.index
		} else {
			path[i] = s.label
		}
	}
	return model.Entry{Path: path, Kind: e.value.Kind().String(), Value: e.value.String()}
}

// ModelEntryWithHashes adds the key and value field elements to ModelEntry.
func ModelEntryWithHashes(e Entry, h LeafHashes) model.EntryWithHashes {
	return model.EntryWithHashes{
		Entry:     ModelEntry(e),
		KeyHash:   h.Key.String(),
		ValueHash: h.Value.String(),
	}
}

// Listing renders entries as canonical JSON lines, one ModelEntry per line,
// each terminated by "\n". The listing does not depend on the hasher, so two
// implementations can compare outputs before any field arithmetic.
func Listing(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		b, err := json.Marshal(ModelEntry(e))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ListingCID returns the CIDv1 (raw + sha2-256) of Listing(entries).
func ListingCID(entries []Entry) (string, error) {
	b, err := Listing(entries)
	if err != nil {
		return "", err
	}
	return cidutil.CIDv1RawSHA256(b), nil
}
