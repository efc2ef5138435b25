// Command vbmeta_vector_gen emits a well-formed hashtree descriptor in wire
// format, for use as a conformance vector. The encoding mirrors the signing
// tool: big-endian fixed header, name/salt/digest packed back to back, zero
// padding to an 8-byte boundary covered by num_bytes_following.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"xdao.co/vbmeta/cidutil"
	"xdao.co/vbmeta/descriptor"
)

const (
	headerSize = 180
	prefixSize = 16
)

func encodeHashtree(partition, alg string, salt, digest []byte) []byte {
	bodyLen := len(partition) + len(salt) + len(digest)
	nbf := (headerSize - prefixSize + bodyLen + 7) &^ 7
	buf := make([]byte, prefixSize+nbf)
	binary.BigEndian.PutUint64(buf[0:8], uint64(descriptor.TagHashtree))
	binary.BigEndian.PutUint64(buf[8:16], uint64(nbf))
	binary.BigEndian.PutUint32(buf[16:20], 1)        // dm-verity version
	binary.BigEndian.PutUint64(buf[20:28], 0xE0000)  // image size
	binary.BigEndian.PutUint64(buf[28:36], 0x40)     // tree offset
	binary.BigEndian.PutUint64(buf[36:44], 0x40)     // tree size
	binary.BigEndian.PutUint32(buf[44:48], 0x1000)   // data block size
	binary.BigEndian.PutUint32(buf[48:52], 0x1000)   // hash block size
	copy(buf[72:104], alg)
	binary.BigEndian.PutUint32(buf[104:108], uint32(len(partition)))
	binary.BigEndian.PutUint32(buf[108:112], uint32(len(salt)))
	binary.BigEndian.PutUint32(buf[112:116], uint32(len(digest)))
	p := headerSize
	p += copy(buf[p:], partition)
	p += copy(buf[p:], salt)
	copy(buf[p:], digest)
	return buf
}

func main() {
	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}
	vec := encodeHashtree("test_part_hashtree", "sha1", nil, digest)

	// Self-check before emitting.
	if _, err := descriptor.ParseHashtree(vec); err != nil {
		fmt.Fprintf(os.Stderr, "generated vector does not parse: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("// hashtree conformance vector, CID %s\n", cidutil.String(vec))
	fmt.Printf("var hashtreeVector = []byte{")
	for i, b := range vec {
		if i%12 == 0 {
			fmt.Printf("\n\t")
		}
		fmt.Printf("0x%02X, ", b)
	}
	fmt.Printf("\n}\n")
}
