package descriptor

import "encoding/binary"

// ChainPartitionFlags are the flag bits carried by a chain partition
// descriptor.
type ChainPartitionFlags uint32

const (
	// ChainPartitionFlagDoNotApplyRollbackProtection: skip rollback index
	// checks for the chained partition.
	ChainPartitionFlagDoNotApplyRollbackProtection ChainPartitionFlags = 1 << 0
)

const chainPartitionHeaderSize = 92

// chainPartitionHeader is the fixed wire header of a chain partition
// descriptor.
type chainPartitionHeader struct {
	prefix
	rollbackIndexLocation uint32
	partitionNameLen      uint32
	publicKeyLen          uint32
	flags                 uint32
}

func (h *chainPartitionHeader) wireSize() int { return chainPartitionHeaderSize }

func (h *chainPartitionHeader) validateAndByteswap(raw []byte) bool {
	if !h.prefix.validateAndByteswap(raw) {
		return false
	}
	if Tag(h.tag) != TagChainPartition {
		return false
	}
	h.rollbackIndexLocation = binary.BigEndian.Uint32(raw[16:20])
	h.partitionNameLen = binary.BigEndian.Uint32(raw[20:24])
	h.publicKeyLen = binary.BigEndian.Uint32(raw[24:28])
	h.flags = binary.BigEndian.Uint32(raw[28:32])

	expected := uint64(chainPartitionHeaderSize - prefixSize)
	if h.numBytesFollowing == expected {
		return true
	}
	for _, n := range []uint32{h.partitionNameLen, h.publicKeyLen} {
		var ok bool
		if expected, ok = safeAdd(expected, uint64(n)); !ok {
			return false
		}
	}
	return h.numBytesFollowing >= expected
}

// ChainPartition is a read-only view of one chain partition descriptor: a
// delegation of a partition's verification to a separately signed vbmeta
// image, pinned to a public key.
//
// PublicKey aliases the input passed to ParseChainPartition. The key bytes
// are not interpreted here; signature verification is the verifier's job.
type ChainPartition struct {
	// RollbackIndexLocation is the rollback index slot the chained image uses.
	RollbackIndexLocation uint32

	// Flags are carried opaquely.
	Flags ChainPartitionFlags

	// PartitionName is the chained partition, without slot suffix.
	PartitionName string

	// PublicKey is the key the chained vbmeta image must be signed with.
	PublicKey []byte
}

// Tag returns TagChainPartition.
func (*ChainPartition) Tag() Tag { return TagChainPartition }

// ParseChainPartition extracts a chain partition descriptor from contents,
// which must hold one whole descriptor (header plus body) in wire format.
func ParseChainPartition(contents []byte) (*ChainPartition, error) {
	// Body layout: partition name, then public key.
	var hdr chainPartitionHeader
	_, body, err := parseDescriptor(contents, &hdr)
	if err != nil {
		return nil, err
	}
	partitionName, rest, err := splitSlice(body, uint64(hdr.partitionNameLen))
	if err != nil {
		return nil, err
	}
	publicKey, _, err := splitSlice(rest, uint64(hdr.publicKeyLen))
	if err != nil {
		return nil, err
	}
	name, err := utf8String(partitionName)
	if err != nil {
		return nil, err
	}
	return &ChainPartition{
		RollbackIndexLocation: hdr.rollbackIndexLocation,
		Flags:                 ChainPartitionFlags(hdr.flags),
		PartitionName:         name,
		PublicKey:             publicKey,
	}, nil
}
