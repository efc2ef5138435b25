package descriptor

import "encoding/binary"

// Descriptor is implemented by every parsed descriptor view.
type Descriptor interface {
	// Tag identifies the descriptor kind.
	Tag() Tag
}

// Unknown preserves a descriptor whose tag this package does not recognize.
// Unknown tags are forward-compatible, not malformed: newer signing tools may
// emit kinds an older verifier must skip over.
//
// Contents aliases the walked input and spans the whole record, prefix
// included.
type Unknown struct {
	RawTag   uint64
	Contents []byte
}

// Tag returns the unrecognized tag value.
func (u *Unknown) Tag() Tag { return Tag(u.RawTag) }

// Descriptors walks a contiguous stream of descriptor records, as stored in a
// vbmeta image's descriptors block, and parses each in order.
//
// The caller is expected to have cut the stream to its exact extent (the
// vbmeta header states it); the walk consumes the input completely and fails
// on any record whose declared size overruns the remaining bytes.
func Descriptors(data []byte) ([]Descriptor, error) {
	var out []Descriptor
	rest := data
	for len(rest) > 0 {
		if len(rest) < prefixSize {
			return nil, newError(KindHeader, "VBM-HDR-001", "descriptor stream ends inside a record prefix")
		}
		var p prefix
		if !p.validateAndByteswap(rest[:prefixSize]) {
			return nil, newError(KindHeader, "VBM-HDR-002", "descriptor prefix failed validation")
		}
		total, ok := p.total()
		if !ok || total > uint64(len(rest)) {
			return nil, newError(KindSize, "VBM-SIZE-001", "declared descriptor extent exceeds remaining stream")
		}
		d, err := parseAny(Tag(p.tag), rest[:total:total])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		rest = rest[total:]
	}
	return out, nil
}

func parseAny(tag Tag, contents []byte) (Descriptor, error) {
	switch tag {
	case TagProperty:
		return ParseProperty(contents)
	case TagHashtree:
		return ParseHashtree(contents)
	case TagHash:
		return ParseHash(contents)
	case TagKernelCmdline:
		return ParseKernelCmdline(contents)
	case TagChainPartition:
		return ParseChainPartition(contents)
	default:
		return &Unknown{
			RawTag:   binary.BigEndian.Uint64(contents[0:8]),
			Contents: contents,
		}, nil
	}
}
