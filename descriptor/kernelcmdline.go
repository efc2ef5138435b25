package descriptor

import "encoding/binary"

// KernelCmdlineFlags gate when a cmdline fragment applies.
type KernelCmdlineFlags uint32

const (
	// KernelCmdlineFlagUseOnlyIfHashtreeNotDisabled: apply the fragment only
	// when dm-verity is enabled.
	KernelCmdlineFlagUseOnlyIfHashtreeNotDisabled KernelCmdlineFlags = 1 << 0

	// KernelCmdlineFlagUseOnlyIfHashtreeDisabled: apply the fragment only when
	// dm-verity is disabled.
	KernelCmdlineFlagUseOnlyIfHashtreeDisabled KernelCmdlineFlags = 1 << 1
)

const kernelCmdlineHeaderSize = 24

// kernelCmdlineHeader is the fixed wire header of a kernel cmdline descriptor.
type kernelCmdlineHeader struct {
	prefix
	flags         uint32
	cmdlineLength uint32
}

func (h *kernelCmdlineHeader) wireSize() int { return kernelCmdlineHeaderSize }

func (h *kernelCmdlineHeader) validateAndByteswap(raw []byte) bool {
	if !h.prefix.validateAndByteswap(raw) {
		return false
	}
	if Tag(h.tag) != TagKernelCmdline {
		return false
	}
	h.flags = binary.BigEndian.Uint32(raw[16:20])
	h.cmdlineLength = binary.BigEndian.Uint32(raw[20:24])

	expected := uint64(kernelCmdlineHeaderSize - prefixSize)
	if h.numBytesFollowing == expected {
		return true
	}
	expected, ok := safeAdd(expected, uint64(h.cmdlineLength))
	if !ok {
		return false
	}
	return h.numBytesFollowing >= expected
}

// KernelCmdline is a read-only view of one kernel cmdline descriptor: a
// fragment appended to the kernel command line when its flags match.
type KernelCmdline struct {
	// Flags are carried opaquely.
	Flags KernelCmdlineFlags

	// Cmdline is the fragment text.
	Cmdline string
}

// Tag returns TagKernelCmdline.
func (*KernelCmdline) Tag() Tag { return TagKernelCmdline }

// ParseKernelCmdline extracts a kernel cmdline descriptor from contents,
// which must hold one whole descriptor (header plus body) in wire format.
func ParseKernelCmdline(contents []byte) (*KernelCmdline, error) {
	var hdr kernelCmdlineHeader
	_, body, err := parseDescriptor(contents, &hdr)
	if err != nil {
		return nil, err
	}
	cmdline, _, err := splitSlice(body, uint64(hdr.cmdlineLength))
	if err != nil {
		return nil, err
	}
	text, err := utf8String(cmdline)
	if err != nil {
		return nil, err
	}
	return &KernelCmdline{Flags: KernelCmdlineFlags(hdr.flags), Cmdline: text}, nil
}
