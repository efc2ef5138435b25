package cidutil

import "testing"

func TestSum_Deterministic(t *testing.T) {
	a, err := Sum([]byte("vbmeta blob"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	b, err := Sum([]byte("vbmeta blob"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if a != b {
		t.Fatalf("identical bytes produced different CIDs: %s vs %s", a, b)
	}
	if a.String() != String([]byte("vbmeta blob")) {
		t.Fatalf("String disagrees with Sum")
	}
}

func TestSum_DistinctInputs(t *testing.T) {
	a, err := Sum([]byte{0x00})
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	b, err := Sum([]byte{0x01})
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if a == b {
		t.Fatalf("distinct bytes produced the same CID")
	}
}

func TestSum_EmptyInput(t *testing.T) {
	id, err := Sum(nil)
	if err != nil {
		t.Fatalf("Sum(nil): %v", err)
	}
	if !id.Defined() {
		t.Fatalf("Sum(nil) must still produce a defined CID")
	}
}
