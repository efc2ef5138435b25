package descriptor

import (
	"bytes"
	"reflect"
	"testing"
)

func testHash() *Hash {
	return &Hash{
		ImageSize:     0x2000,
		HashAlgorithm: "sha256",
		Flags:         HashFlagDoNotUseAB,
		PartitionName: "boot",
		Salt:          []byte{0x01, 0x02, 0x03, 0x04},
		Digest:        bytes.Repeat([]byte{0x5A}, 32),
	}
}

func TestParseHash_RoundTrip(t *testing.T) {
	want := testHash()
	got, err := ParseHash(buildHash(t, want))
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestParseHash_TruncationSweep(t *testing.T) {
	full := buildHash(t, testHash())
	for k := 0; k < len(full); k++ {
		_, err := ParseHash(full[:k])
		if err == nil {
			t.Fatalf("k=%d: expected error for truncated descriptor", k)
		}
		wantKind := KindSize
		if k < hashHeaderSize {
			wantKind = KindHeader
		}
		if !IsKind(err, wantKind) {
			t.Fatalf("k=%d: got %v, want kind %s", k, err, wantKind)
		}
	}
}

func TestParseHash_RejectsHashtreeTag(t *testing.T) {
	_, err := ParseHash(hashtreeVector(t))
	if !IsKind(err, KindHeader) {
		t.Fatalf("expected KindHeader for foreign tag, got %v", err)
	}
}

func TestParseHash_EmptySaltAndDigest(t *testing.T) {
	want := &Hash{
		ImageSize:     0x800,
		HashAlgorithm: "sha512",
		PartitionName: "dtbo",
		Salt:          []byte{},
		Digest:        []byte{},
	}
	got, err := ParseHash(buildHash(t, want))
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}
