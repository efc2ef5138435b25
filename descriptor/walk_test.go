package descriptor

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func testStream(t *testing.T) []byte {
	t.Helper()
	var stream []byte
	stream = append(stream, buildProperty(t, "com.android.avb.version", []byte("1.3"))...)
	stream = append(stream, hashtreeVector(t)...)
	stream = append(stream, buildHash(t, testHash())...)
	stream = append(stream, buildKernelCmdline(t, 0, "androidboot.veritymode=enforcing")...)
	stream = append(stream, buildChainPartition(t, testChainPartition())...)
	return stream
}

func TestDescriptors_Stream(t *testing.T) {
	ds, err := Descriptors(testStream(t))
	if err != nil {
		t.Fatalf("Descriptors: %v", err)
	}
	wantTags := []Tag{TagProperty, TagHashtree, TagHash, TagKernelCmdline, TagChainPartition}
	if len(ds) != len(wantTags) {
		t.Fatalf("got %d descriptors, want %d", len(ds), len(wantTags))
	}
	for i, d := range ds {
		if d.Tag() != wantTags[i] {
			t.Fatalf("descriptor %d: tag = %d, want %d", i, d.Tag(), wantTags[i])
		}
	}

	ht, ok := ds[1].(*Hashtree)
	if !ok {
		t.Fatalf("descriptor 1: %T, want *Hashtree", ds[1])
	}
	if ht.PartitionName != "test_part_hashtree" || ht.HashAlgorithm != "sha1" {
		t.Fatalf("hashtree fields wrong: %+v", ht)
	}
}

func TestDescriptors_Empty(t *testing.T) {
	ds, err := Descriptors(nil)
	if err != nil {
		t.Fatalf("Descriptors(nil): %v", err)
	}
	if len(ds) != 0 {
		t.Fatalf("got %d descriptors from empty stream", len(ds))
	}
}

func TestDescriptors_UnknownTagPreserved(t *testing.T) {
	body := bytes.Repeat([]byte{0xEE}, 8)
	record := make([]byte, prefixSize+len(body))
	binary.BigEndian.PutUint64(record[0:8], 0x1234)
	binary.BigEndian.PutUint64(record[8:16], uint64(len(body)))
	copy(record[prefixSize:], body)

	ds, err := Descriptors(record)
	if err != nil {
		t.Fatalf("Descriptors: %v", err)
	}
	u, ok := ds[0].(*Unknown)
	if !ok {
		t.Fatalf("got %T, want *Unknown", ds[0])
	}
	if u.RawTag != 0x1234 {
		t.Fatalf("RawTag = %#x", u.RawTag)
	}
	if !bytes.Equal(u.Contents, record) {
		t.Fatalf("Contents must span the whole record")
	}
}

func TestDescriptors_TruncatedStream(t *testing.T) {
	stream := testStream(t)
	for _, k := range []int{len(stream) - 1, len(stream) - 7, len(stream) / 2, 1, 15} {
		_, err := Descriptors(stream[:k])
		if err == nil {
			t.Fatalf("k=%d: expected error for truncated stream", k)
		}
	}
}

func TestDescriptors_RecordOverrunsStream(t *testing.T) {
	record := make([]byte, prefixSize)
	binary.BigEndian.PutUint64(record[0:8], uint64(TagProperty))
	binary.BigEndian.PutUint64(record[8:16], 1<<40) // extends far past the stream
	_, err := Descriptors(record)
	if !IsKind(err, KindSize) {
		t.Fatalf("expected KindSize, got %v", err)
	}
}

func TestDescriptors_Deterministic(t *testing.T) {
	stream := testStream(t)
	a, err := Descriptors(stream)
	if err != nil {
		t.Fatalf("Descriptors(1): %v", err)
	}
	b, err := Descriptors(stream)
	if err != nil {
		t.Fatalf("Descriptors(2): %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated walks disagree")
	}
}
