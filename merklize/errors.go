package merklize

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindInvalidArgument: malformed construction input (empty path, unsupported value kind).
	KindInvalidArgument Kind = "InvalidArgument"
	// KindStructural: the dataset violates the expected shape.
	KindStructural Kind = "Structural"
	// KindNotSupported: a recognised shape that is not handled.
	KindNotSupported Kind = "NotSupported"
	// KindInvariant: a condition relationship discovery should have precluded.
	// Signals an internal defect or a dataset mutated between phases.
	KindInvariant Kind = "InvariantViolation"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g. MRK-STR-003) naming the violated rule.
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
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

// Rule IDs.
const (
	ruleNilHasher    = "MRK-ARG-001"
	ruleEmptyPath    = "MRK-ARG-002"
	ruleValueKind    = "MRK-ARG-003"
	ruleNegIndex     = "MRK-ARG-004"
	ruleEmptyLabel   = "MRK-ARG-005"
	ruleNilDataset   = "MRK-ARG-006"
	ruleDefaultGraph = "MRK-STR-001"
	ruleInconsistent = "MRK-STR-002"
	rulePredicate    = "MRK-STR-003"
	ruleBoolean      = "MRK-STR-004"
	ruleInteger      = "MRK-STR-005"
	ruleDateTime     = "MRK-STR-006"
	ruleEmptyIRI     = "MRK-STR-007"
	ruleTermKind     = "MRK-STR-008"
	ruleParentLookup = "MRK-STR-009"
	ruleCycle        = "MRK-STR-010"
	ruleBlankNode    = "MRK-NS-001"
	ruleMissingQuad  = "MRK-INV-001"
	ruleNoChildren   = "MRK-INV-002"
	ruleNoSibling    = "MRK-INV-003"
	ruleZeroCount    = "MRK-INV-004"
)
