package descriptor

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindHeader covers inputs shorter than a kind's fixed header and headers
	// rejected by the kind's validate-and-byteswap routine.
	KindHeader Kind = "Header"

	// KindSize covers declared lengths that exceed the bytes actually present.
	KindSize Kind = "Size"

	// KindText covers text fields that are not valid UTF-8 or that lack a nul
	// terminator within their fixed width.
	KindText Kind = "Text"

	// KindValue covers fields whose decoded value is impossible for the kind,
	// such as a missing property separator byte.
	KindValue Kind = "Value"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g. VBM-HDR-001, VBM-SIZE-002) that names
// the violated parsing rule. Message is intended for humans; do not match on
// it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
