package descriptor

import "encoding/binary"

// HashFlags are the flag bits carried by a hash descriptor.
type HashFlags uint32

const (
	// HashFlagDoNotUseAB: this partition does not use A/B slot suffixes.
	HashFlagDoNotUseAB HashFlags = 1 << 0
)

const (
	hashHeaderSize       = 132
	hashHashAlgorithmOff = 24
	hashHashAlgorithmLen = 32
)

// hashHeader is the fixed wire header of a hash descriptor.
type hashHeader struct {
	prefix
	imageSize        uint64
	partitionNameLen uint32
	saltLen          uint32
	digestLen        uint32
	flags            uint32
}

func (h *hashHeader) wireSize() int { return hashHeaderSize }

func (h *hashHeader) validateAndByteswap(raw []byte) bool {
	if !h.prefix.validateAndByteswap(raw) {
		return false
	}
	if Tag(h.tag) != TagHash {
		return false
	}
	h.imageSize = binary.BigEndian.Uint64(raw[16:24])
	h.partitionNameLen = binary.BigEndian.Uint32(raw[56:60])
	h.saltLen = binary.BigEndian.Uint32(raw[60:64])
	h.digestLen = binary.BigEndian.Uint32(raw[64:68])
	h.flags = binary.BigEndian.Uint32(raw[68:72])

	expected := uint64(hashHeaderSize - prefixSize)
	if h.numBytesFollowing == expected {
		return true
	}
	for _, n := range []uint32{h.partitionNameLen, h.saltLen, h.digestLen} {
		var ok bool
		if expected, ok = safeAdd(expected, uint64(n)); !ok {
			return false
		}
	}
	return h.numBytesFollowing >= expected
}

// Hash is a read-only view of one hash descriptor: a whole-partition digest,
// used for small partitions verified in one shot at boot.
//
// Salt and Digest alias the input passed to ParseHash.
type Hash struct {
	// ImageSize is the size in bytes of the hashed image.
	ImageSize uint64

	// HashAlgorithm names the digest algorithm, e.g. "sha256".
	HashAlgorithm string

	// Flags are carried opaquely.
	Flags HashFlags

	// PartitionName is the partition the digest covers, without slot suffix.
	PartitionName string

	// Salt is prepended to the image when hashing.
	Salt []byte

	// Digest is the expected digest of salt plus image.
	Digest []byte
}

// Tag returns TagHash.
func (*Hash) Tag() Tag { return TagHash }

// ParseHash extracts a hash descriptor from contents, which must hold one
// whole descriptor (header plus body) in wire format.
func ParseHash(contents []byte) (*Hash, error) {
	// Body layout: partition name, then salt, then digest.
	var hdr hashHeader
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
	digest, _, err := splitSlice(rest, uint64(hdr.digestLen))
	if err != nil {
		return nil, err
	}

	hashAlgorithm, err := cstr(rawHeader[hashHashAlgorithmOff : hashHashAlgorithmOff+hashHashAlgorithmLen])
	if err != nil {
		return nil, err
	}
	name, err := utf8String(partitionName)
	if err != nil {
		return nil, err
	}

	return &Hash{
		ImageSize:     hdr.imageSize,
		HashAlgorithm: hashAlgorithm,
		Flags:         HashFlags(hdr.flags),
		PartitionName: name,
		Salt:          salt,
		Digest:        digest,
	}, nil
}
