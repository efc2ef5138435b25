// Package cidutil derives content identifiers for stored vbmeta blobs.
//
// Blobs are identified by CIDv1 with the "raw" multicodec and a sha2-256
// multihash, so the identifier is a pure function of the bytes: two captures
// of the same image always collide, and a blob fetched by CID can be
// re-verified against it.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns the CIDv1 (raw + sha2-256) of data.
func Sum(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String returns the string form of Sum(data).
// multihash.Sum cannot fail for SHA2_256 with default length; on the
// unreachable error path this returns "".
func String(data []byte) string {
	id, err := Sum(data)
	if err != nil {
		return ""
	}
	return id.String()
}
