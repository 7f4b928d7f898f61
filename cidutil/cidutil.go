// Package cidutil derives content identifiers for canonical entry listings.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only errors for unknown codes or bad lengths; with
		// SHA2_256 and the default length this is unreachable.
		return ""
	}
	return id.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Parse decodes a CID string and requires the raw codec with a sha2-256 digest.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, err
	}
	if id.Type() != cid.Raw {
		return cid.Undef, fmt.Errorf("cidutil: codec 0x%x, want raw", id.Type())
	}
	dec, err := multihash.Decode(id.Hash())
	if err != nil {
		return cid.Undef, err
	}
	if dec.Code != multihash.SHA2_256 {
		return cid.Undef, fmt.Errorf("cidutil: multihash %s, want sha2-256", dec.Name)
	}
	return id, nil
}
