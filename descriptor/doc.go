// Package descriptor parses the tagged binary records embedded in an Android
// Verified Boot (vbmeta) metadata blob.
//
// Every input byte is attacker-controlled until validated: descriptors are
// read at boot time from storage the verifier must not trust. The package
// therefore never reads past a declared length without checking it first, and
// a malformed record is rejected with a structured error rather than "fixed
// up". A single malformed descriptor should cause the caller to abort trust
// in the whole blob.
//
// Parsed views are zero-copy: byte fields (salts, digests, public keys,
// property values) alias the caller's input slice. Callers must not mutate
// the input while a view derived from it is in use.
package descriptor
