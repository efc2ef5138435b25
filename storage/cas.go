// Package storage defines the content-addressed store used to archive vbmeta
// blobs for later inspection.
package storage

import "github.com/ipfs/go-cid"

// CAS is a minimal content-addressable storage interface for vbmeta blobs.
//
// Contract:
// - Put MUST be idempotent.
// - Stored blobs MUST be immutable.
// - CIDs MUST be derived from the bytes written (cidutil.Sum).
// - Get MUST return ErrNotFound when the CID is absent.
type CAS interface {
	Put(blob []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
