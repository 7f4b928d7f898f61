// Package compliance selects how much dataset validation runs before entries
// are built.
package compliance

import "fmt"

// ComplianceMode selects how aggressively the library rejects ambiguity.
//
// Permissive only requires a non-empty default graph; malformed statements are
// still rejected when the walk reaches them.
// Strict runs the full dataset consistency check up front and fails before any
// entry is built.
type ComplianceMode int

const (
	Permissive ComplianceMode = iota
	Strict
)

func (m ComplianceMode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ComplianceMode(%d)", int(m))
	}
}

// Parse maps "permissive" (or "") and "strict" to a mode.
func Parse(s string) (ComplianceMode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return 0, fmt.Errorf("compliance: unknown mode %q (want permissive or strict)", s)
	}
}
