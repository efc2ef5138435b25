package descriptor

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"
)

// Reference encoders for test vectors. These mirror the signing tool's output
// byte for byte: big-endian fixed headers, back-to-back variable sections,
// zero padding up to 8-byte alignment, with num_bytes_following covering the
// padding.

func round8(n int) int { return (n + 7) &^ 7 }

func putPrefix(buf []byte, tag Tag, nbf int) {
	binary.BigEndian.PutUint64(buf[0:8], uint64(tag))
	binary.BigEndian.PutUint64(buf[8:16], uint64(nbf))
}

func buildHashtree(t *testing.T, h *Hashtree) []byte {
	t.Helper()
	if len(h.HashAlgorithm) >= hashtreeHashAlgorithmLen {
		t.Fatalf("hash algorithm %q too long for fixed field", h.HashAlgorithm)
	}
	bodyLen := len(h.PartitionName) + len(h.Salt) + len(h.RootDigest)
	nbf := round8(hashtreeHeaderSize - prefixSize + bodyLen)
	buf := make([]byte, prefixSize+nbf)
	putPrefix(buf, TagHashtree, nbf)
	binary.BigEndian.PutUint32(buf[16:20], h.DMVerityVersion)
	binary.BigEndian.PutUint64(buf[20:28], h.ImageSize)
	binary.BigEndian.PutUint64(buf[28:36], h.TreeOffset)
	binary.BigEndian.PutUint64(buf[36:44], h.TreeSize)
	binary.BigEndian.PutUint32(buf[44:48], h.DataBlockSize)
	binary.BigEndian.PutUint32(buf[48:52], h.HashBlockSize)
	binary.BigEndian.PutUint32(buf[52:56], h.FECNumRoots)
	binary.BigEndian.PutUint64(buf[56:64], h.FECOffset)
	binary.BigEndian.PutUint64(buf[64:72], h.FECSize)
	copy(buf[72:104], h.HashAlgorithm)
	binary.BigEndian.PutUint32(buf[104:108], uint32(len(h.PartitionName)))
	binary.BigEndian.PutUint32(buf[108:112], uint32(len(h.Salt)))
	binary.BigEndian.PutUint32(buf[112:116], uint32(len(h.RootDigest)))
	binary.BigEndian.PutUint32(buf[116:120], uint32(h.Flags))
	p := hashtreeHeaderSize
	p += copy(buf[p:], h.PartitionName)
	p += copy(buf[p:], h.Salt)
	copy(buf[p:], h.RootDigest)
	return buf
}

func buildHash(t *testing.T, h *Hash) []byte {
	t.Helper()
	bodyLen := len(h.PartitionName) + len(h.Salt) + len(h.Digest)
	nbf := round8(hashHeaderSize - prefixSize + bodyLen)
	buf := make([]byte, prefixSize+nbf)
	putPrefix(buf, TagHash, nbf)
	binary.BigEndian.PutUint64(buf[16:24], h.ImageSize)
	copy(buf[24:56], h.HashAlgorithm)
	binary.BigEndian.PutUint32(buf[56:60], uint32(len(h.PartitionName)))
	binary.BigEndian.PutUint32(buf[60:64], uint32(len(h.Salt)))
	binary.BigEndian.PutUint32(buf[64:68], uint32(len(h.Digest)))
	binary.BigEndian.PutUint32(buf[68:72], uint32(h.Flags))
	p := hashHeaderSize
	p += copy(buf[p:], h.PartitionName)
	p += copy(buf[p:], h.Salt)
	copy(buf[p:], h.Digest)
	return buf
}

func buildProperty(t *testing.T, key string, value []byte) []byte {
	t.Helper()
	bodyLen := len(key) + 1 + len(value) + 1
	nbf := round8(propertyHeaderSize - prefixSize + bodyLen)
	buf := make([]byte, prefixSize+nbf)
	putPrefix(buf, TagProperty, nbf)
	binary.BigEndian.PutUint64(buf[16:24], uint64(len(key)))
	binary.BigEndian.PutUint64(buf[24:32], uint64(len(value)))
	p := propertyHeaderSize
	p += copy(buf[p:], key)
	p++ // nul
	copy(buf[p:], value)
	return buf
}

func buildKernelCmdline(t *testing.T, flags KernelCmdlineFlags, cmdline string) []byte {
	t.Helper()
	nbf := round8(kernelCmdlineHeaderSize - prefixSize + len(cmdline))
	buf := make([]byte, prefixSize+nbf)
	putPrefix(buf, TagKernelCmdline, nbf)
	binary.BigEndian.PutUint32(buf[16:20], uint32(flags))
	binary.BigEndian.PutUint32(buf[20:24], uint32(len(cmdline)))
	copy(buf[kernelCmdlineHeaderSize:], cmdline)
	return buf
}

func buildChainPartition(t *testing.T, c *ChainPartition) []byte {
	t.Helper()
	bodyLen := len(c.PartitionName) + len(c.PublicKey)
	nbf := round8(chainPartitionHeaderSize - prefixSize + bodyLen)
	buf := make([]byte, prefixSize+nbf)
	putPrefix(buf, TagChainPartition, nbf)
	binary.BigEndian.PutUint32(buf[16:20], c.RollbackIndexLocation)
	binary.BigEndian.PutUint32(buf[20:24], uint32(len(c.PartitionName)))
	binary.BigEndian.PutUint32(buf[24:28], uint32(len(c.PublicKey)))
	binary.BigEndian.PutUint32(buf[28:32], uint32(c.Flags))
	p := chainPartitionHeaderSize
	p += copy(buf[p:], c.PartitionName)
	copy(buf[p:], c.PublicKey)
	return buf
}

// hashtreeVector is a hashtree descriptor produced by the reference signing
// tool: dm-verity over "test_part_hashtree" with sha1, a 20-byte salt and a
// 20-byte root digest, followed by 2 alignment padding bytes.
const hashtreeVectorHex = `
000000000000000100000000000000
e00000000100000000000040000000
000000004000000000000000100000
001000000010000000000000000000
000000000000000000000000736861
310000000000000000000000000000
000000000000000000000000000000
000012000000140000001400000000
000000000000000000000000000000
000000000000000000000000000000
000000000000000000000000000000
000000000000000000000000000000
746573745f706172745f6861736874
72656599cec4296061cfbde7d217e2
88990539ab706dd04c7776f8fdd22b
f4c47f311b7b7ba5ef428d7be80000
`

func hashtreeVector(t *testing.T) []byte {
	t.Helper()
	s := strings.Join(strings.Fields(hashtreeVectorHex), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad vector hex: %v", err)
	}
	if len(b) != 240 {
		t.Fatalf("vector length = %d, want 240", len(b))
	}
	return b
}
