package descriptor

import "encoding/binary"

// HashtreeFlags are the flag bits carried by a hashtree descriptor. They are
// not interpreted here; dm-verity setup decides what they mean.
type HashtreeFlags uint32

const (
	// HashtreeFlagDoNotUseAB: this partition does not use A/B slot suffixes.
	HashtreeFlagDoNotUseAB HashtreeFlags = 1 << 0

	// HashtreeFlagCheckAtMostOnce: data blocks may be verified only on first
	// read rather than on every read.
	HashtreeFlagCheckAtMostOnce HashtreeFlags = 1 << 1
)

// Wire layout of the hashtree descriptor's fixed header. All integer fields
// are big-endian; hash_algorithm is a nul-padded byte field; the header ends
// with reserved bytes that are neither validated nor exposed.
const (
	hashtreeHeaderSize       = 180
	hashtreeHashAlgorithmOff = 72
	hashtreeHashAlgorithmLen = 32
)

// hashtreeHeader is the fixed wire header of a hashtree descriptor.
type hashtreeHeader struct {
	prefix
	dmVerityVersion  uint32
	imageSize        uint64
	treeOffset       uint64
	treeSize         uint64
	dataBlockSize    uint32
	hashBlockSize    uint32
	fecNumRoots      uint32
	fecOffset        uint64
	fecSize          uint64
	partitionNameLen uint32
	saltLen          uint32
	rootDigestLen    uint32
	flags            uint32
}

func (h *hashtreeHeader) wireSize() int { return hashtreeHeaderSize }

func (h *hashtreeHeader) validateAndByteswap(raw []byte) bool {
	if !h.prefix.validateAndByteswap(raw) {
		return false
	}
	if Tag(h.tag) != TagHashtree {
		return false
	}
	h.dmVerityVersion = binary.BigEndian.Uint32(raw[16:20])
	h.imageSize = binary.BigEndian.Uint64(raw[20:28])
	h.treeOffset = binary.BigEndian.Uint64(raw[28:36])
	h.treeSize = binary.BigEndian.Uint64(raw[36:44])
	h.dataBlockSize = binary.BigEndian.Uint32(raw[44:48])
	h.hashBlockSize = binary.BigEndian.Uint32(raw[48:52])
	h.fecNumRoots = binary.BigEndian.Uint32(raw[52:56])
	h.fecOffset = binary.BigEndian.Uint64(raw[56:64])
	h.fecSize = binary.BigEndian.Uint64(raw[64:72])
	h.partitionNameLen = binary.BigEndian.Uint32(raw[104:108])
	h.saltLen = binary.BigEndian.Uint32(raw[108:112])
	h.rootDigestLen = binary.BigEndian.Uint32(raw[112:116])
	h.flags = binary.BigEndian.Uint32(raw[116:120])

	// num_bytes_following must cover the variable-length tail the header
	// declares. Sums are overflow-checked; the length fields are untrusted.
	expected := uint64(hashtreeHeaderSize - prefixSize)
	if h.numBytesFollowing == expected {
		return true
	}
	for _, n := range []uint32{h.partitionNameLen, h.saltLen, h.rootDigestLen} {
		var ok bool
		if expected, ok = safeAdd(expected, uint64(n)); !ok {
			return false
		}
	}
	return h.numBytesFollowing >= expected
}

// Hashtree is a read-only view of one hashtree (dm-verity) descriptor.
//
// Salt and RootDigest alias the input passed to ParseHashtree; the input must
// stay live and unmodified for as long as the view is used.
type Hashtree struct {
	// DMVerityVersion is the dm-verity on-disk format version.
	DMVerityVersion uint32

	// ImageSize is the size in bytes of the hashed image.
	ImageSize uint64

	// TreeOffset is the offset of the hash tree root block in the partition.
	TreeOffset uint64

	// TreeSize is the hash tree size in bytes.
	TreeSize uint64

	// DataBlockSize and HashBlockSize are the dm-verity block sizes in bytes.
	DataBlockSize uint32
	HashBlockSize uint32

	// FECNumRoots, FECOffset and FECSize describe the forward-error-correction
	// data, if any.
	FECNumRoots uint32
	FECOffset   uint64
	FECSize     uint64

	// HashAlgorithm names the tree's hash algorithm, e.g. "sha1" or "sha256".
	HashAlgorithm string

	// Flags are carried opaquely.
	Flags HashtreeFlags

	// PartitionName is the partition the tree covers, without slot suffix.
	PartitionName string

	// Salt is the salt prepended when hashing each block.
	Salt []byte

	// RootDigest is the digest of the hash tree's root block.
	RootDigest []byte
}

// Tag returns TagHashtree.
func (*Hashtree) Tag() Tag { return TagHashtree }

// ParseHashtree extracts a hashtree descriptor from contents, which must hold
// one whole descriptor (header plus body) in wire format. Padding after the
// declared extent is tolerated and ignored.
func ParseHashtree(contents []byte) (*Hashtree, error) {
	// Body layout: partition name, then salt, then root digest, back to back.
	var hdr hashtreeHeader
	rawHeader, body, err := parseDescriptor(contents, &hdr)
	if err != nil {
		return nil, err
	}
	partitionName, rest, err := splitSlice(body, uint64(hdr.partitionNameLen))
	if err != nil {
		return nil, err
	}
	salt, rest, err := splitSlice(rest, uint64(hdr.saltLen))
	if err != nil {
		return nil, err
	}
	rootDigest, _, err := splitSlice(rest, uint64(hdr.rootDigestLen))
	if err != nil {
		return nil, err
	}

	// The algorithm name is byte-order independent, so it is read from the
	// raw header snapshot rather than the converted fields.
	hashAlgorithm, err := cstr(rawHeader[hashtreeHashAlgorithmOff : hashtreeHashAlgorithmOff+hashtreeHashAlgorithmLen])
	if err != nil {
		return nil, err
	}
	name, err := utf8String(partitionName)
	if err != nil {
		return nil, err
	}

	return &Hashtree{
		DMVerityVersion: hdr.dmVerityVersion,
		ImageSize:       hdr.imageSize,
		TreeOffset:      hdr.treeOffset,
		TreeSize:        hdr.treeSize,
		DataBlockSize:   hdr.dataBlockSize,
		HashBlockSize:   hdr.hashBlockSize,
		FECNumRoots:     hdr.fecNumRoots,
		FECOffset:       hdr.fecOffset,
		FECSize:         hdr.fecSize,
		HashAlgorithm:   hashAlgorithm,
		Flags:           HashtreeFlags(hdr.flags),
		PartitionName:   name,
		Salt:            salt,
		RootDigest:      rootDigest,
	}, nil
}
