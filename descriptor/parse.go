package descriptor

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Tag discriminates descriptor kinds. Tags are assigned by the vbmeta format;
// values outside the known set are preserved, not rejected.
type Tag uint64

const (
	TagProperty       Tag = 0
	TagHashtree       Tag = 1
	TagHash           Tag = 2
	TagKernelCmdline  Tag = 3
	TagChainPartition Tag = 4
)

// prefixSize is the wire size of the generic prefix every descriptor starts
// with: tag and num_bytes_following, both big-endian u64.
const prefixSize = 16

// prefix is the generic descriptor prefix shared by every kind.
type prefix struct {
	tag               uint64
	numBytesFollowing uint64
}

// validateAndByteswap decodes the prefix from wire order and checks the rules
// common to all kinds: num_bytes_following must keep descriptors 8-byte
// aligned.
func (p *prefix) validateAndByteswap(raw []byte) bool {
	p.tag = binary.BigEndian.Uint64(raw[0:8])
	p.numBytesFollowing = binary.BigEndian.Uint64(raw[8:16])
	return p.numBytesFollowing%8 == 0
}

// total returns the full byte extent of the descriptor, prefix included.
func (p *prefix) total() (uint64, bool) {
	return safeAdd(prefixSize, p.numBytesFollowing)
}

// wireHeader is implemented by each descriptor kind's fixed wire header.
//
// validateAndByteswap is the kind's pre-audited validation routine: it
// decodes the raw big-endian header bytes into host-order fields on the
// receiver and reports whether the kind's structural rules hold (lengths that
// fit, correct tag, alignment). The binding from kind to routine is fixed at
// compile time by the concrete type; there is no runtime registry.
type wireHeader interface {
	wireSize() int
	validateAndByteswap(raw []byte) bool
	total() (uint64, bool)
}

// parseDescriptor splits contents into a validated header and its declared
// body.
//
// On success hdr holds the host-order header fields, rawHeader is the
// unconverted wire-order snapshot of the header bytes, and body is the
// declared body slice (sub-fields plus any alignment padding). Text fields
// embedded in the header are byte-order independent and must be read from
// rawHeader, not reconstructed from the converted fields.
//
// Bytes beyond the declared extent are ignored; callers append padding freely.
func parseDescriptor(contents []byte, hdr wireHeader) (rawHeader, body []byte, err error) {
	n := hdr.wireSize()
	if len(contents) < n {
		return nil, nil, newError(KindHeader, "VBM-HDR-001", "descriptor shorter than fixed header")
	}
	rawHeader = contents[:n:n]
	if !hdr.validateAndByteswap(rawHeader) {
		return nil, nil, newError(KindHeader, "VBM-HDR-002", "descriptor header failed validation")
	}
	total, ok := hdr.total()
	if !ok || total > uint64(len(contents)) {
		return nil, nil, newError(KindSize, "VBM-SIZE-001", "declared descriptor extent exceeds available bytes")
	}
	return rawHeader, contents[n:total], nil
}

// splitSlice returns the first n bytes of data and the remainder.
//
// This is the sole primitive used to carve a descriptor body into its ordered
// sub-fields. It never reads out of bounds: a maliciously short body yields a
// KindSize error, not a panic.
func splitSlice(data []byte, n uint64) (head, rest []byte, err error) {
	if n > uint64(len(data)) {
		return nil, nil, newError(KindSize, "VBM-SIZE-002", "declared field length exceeds remaining body")
	}
	return data[:n:n], data[n:], nil
}

// cstr decodes a fixed-width nul-terminated UTF-8 field.
func cstr(field []byte) (string, error) {
	i := bytes.IndexByte(field, 0)
	if i < 0 {
		return "", newError(KindText, "VBM-TEXT-001", "text field has no nul terminator within its fixed width")
	}
	return utf8String(field[:i])
}

// utf8String decodes b as UTF-8 text.
func utf8String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newError(KindText, "VBM-TEXT-002", "text field is not valid UTF-8")
	}
	return string(b), nil
}

// safeAdd sums a and b, reporting false on u64 overflow. Length fields are
// attacker-controlled; naive sums can wrap.
func safeAdd(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}
