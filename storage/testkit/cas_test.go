package testkit

import (
	"testing"

	"xdao.co/vbmeta/storage"
)

func TestMem_Conformance(t *testing.T) {
	RunCASConformance(t, func(t *testing.T) storage.CAS {
		t.Helper()
		return NewMem()
	})
}
