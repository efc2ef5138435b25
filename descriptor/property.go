package descriptor

import "encoding/binary"

const propertyHeaderSize = 32

// propertyHeader is the fixed wire header of a property descriptor.
type propertyHeader struct {
	prefix
	keyNumBytes   uint64
	valueNumBytes uint64
}

func (h *propertyHeader) wireSize() int { return propertyHeaderSize }

func (h *propertyHeader) validateAndByteswap(raw []byte) bool {
	if !h.prefix.validateAndByteswap(raw) {
		return false
	}
	if Tag(h.tag) != TagProperty {
		return false
	}
	h.keyNumBytes = binary.BigEndian.Uint64(raw[16:24])
	h.valueNumBytes = binary.BigEndian.Uint64(raw[24:32])

	// Key and value are each followed by a mandatory nul byte.
	expected := uint64(propertyHeaderSize - prefixSize)
	if h.numBytesFollowing == expected {
		return true
	}
	for _, n := range []uint64{h.keyNumBytes, h.valueNumBytes, 2} {
		var ok bool
		if expected, ok = safeAdd(expected, n); !ok {
			return false
		}
	}
	return h.numBytesFollowing >= expected
}

// Property is a read-only view of one property descriptor: a free-form
// key/value pair attached to the image by the signing tool.
//
// Value aliases the input passed to ParseProperty. Values frequently hold
// binary data and carry no text semantics; keys are UTF-8.
type Property struct {
	Key   string
	Value []byte
}

// Tag returns TagProperty.
func (*Property) Tag() Tag { return TagProperty }

// ParseProperty extracts a property descriptor from contents, which must hold
// one whole descriptor (header plus body) in wire format.
func ParseProperty(contents []byte) (*Property, error) {
	// Body layout: key, nul, value, nul.
	var hdr propertyHeader
	_, body, err := parseDescriptor(contents, &hdr)
	if err != nil {
		return nil, err
	}
	key, rest, err := splitSlice(body, hdr.keyNumBytes)
	if err != nil {
		return nil, err
	}
	rest, err = takeNul(rest)
	if err != nil {
		return nil, err
	}
	value, rest, err := splitSlice(rest, hdr.valueNumBytes)
	if err != nil {
		return nil, err
	}
	if _, err := takeNul(rest); err != nil {
		return nil, err
	}

	keyText, err := utf8String(key)
	if err != nil {
		return nil, err
	}
	return &Property{Key: keyText, Value: value}, nil
}

// takeNul consumes the single nul separator the wire format requires after
// each property field.
func takeNul(data []byte) (rest []byte, err error) {
	sep, rest, err := splitSlice(data, 1)
	if err != nil {
		return nil, err
	}
	if sep[0] != 0 {
		return nil, newError(KindValue, "VBM-VAL-001", "property field separator is not nul")
	}
	return rest, nil
}
