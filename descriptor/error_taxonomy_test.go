package descriptor

import (
	"errors"
	"testing"
)

func TestErrorTaxonomy_HeaderTooShortRuleID(t *testing.T) {
	_, err := ParseHashtree(make([]byte, hashtreeHeaderSize-1))
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *descriptor.Error, got %T", err)
	}
	if e.Kind != KindHeader {
		t.Fatalf("expected KindHeader, got %s", e.Kind)
	}
	if e.RuleID != "VBM-HDR-001" {
		t.Fatalf("expected RuleID VBM-HDR-001, got %s", e.RuleID)
	}
}

func TestErrorTaxonomy_ValidatorRejectRuleID(t *testing.T) {
	// An all-zero span of header size carries tag 0 (property), which the
	// hashtree validator must refuse.
	_, err := ParseHashtree(make([]byte, hashtreeHeaderSize))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *descriptor.Error, got %T", err)
	}
	if e.Kind != KindHeader || e.RuleID != "VBM-HDR-002" {
		t.Fatalf("got Kind=%s RuleID=%s", e.Kind, e.RuleID)
	}
}

func TestErrorTaxonomy_DeclaredExtentRuleID(t *testing.T) {
	full := hashtreeVector(t)
	_, err := ParseHashtree(full[:len(full)-1])
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *descriptor.Error, got %T", err)
	}
	if e.Kind != KindSize || e.RuleID != "VBM-SIZE-001" {
		t.Fatalf("got Kind=%s RuleID=%s", e.Kind, e.RuleID)
	}
}

func TestErrorTaxonomy_FieldLengthRuleID(t *testing.T) {
	_, _, err := splitSlice([]byte{1}, 2)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *descriptor.Error, got %T", err)
	}
	if e.Kind != KindSize || e.RuleID != "VBM-SIZE-002" {
		t.Fatalf("got Kind=%s RuleID=%s", e.Kind, e.RuleID)
	}
}

func TestErrorTaxonomy_TextRuleIDs(t *testing.T) {
	if _, err := cstr([]byte("abc")); RuleID(err) != "VBM-TEXT-001" {
		t.Fatalf("missing nul: RuleID = %s", RuleID(err))
	}
	if _, err := utf8String([]byte{0xFF}); RuleID(err) != "VBM-TEXT-002" {
		t.Fatalf("bad UTF-8: RuleID = %s", RuleID(err))
	}
}

func TestErrorTaxonomy_HelpersOnForeignErrors(t *testing.T) {
	plain := errors.New("not ours")
	if IsKind(plain, KindHeader) {
		t.Fatalf("IsKind must be false for foreign errors")
	}
	if RuleID(plain) != "" {
		t.Fatalf("RuleID must be empty for foreign errors")
	}
	if IsKind(nil, KindHeader) {
		t.Fatalf("IsKind must be false for nil")
	}
}
