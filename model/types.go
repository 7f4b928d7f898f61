package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

// Entry is the hasher-independent projection of one leaf.
//
// Path elements are strings (predicate IRIs) or integers (array indices).
// Value is the canonical lexical form for Kind: "true"/"false" for Bool,
// base-10 for Int, RFC 3339 in UTC for Time.
type Entry struct {
	Path  []any  `json:"path"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// EntryWithHashes adds the field elements, rendered in base 10.
type EntryWithHashes struct {
	Entry
	KeyHash   string `json:"keyHash"`
	ValueHash string `json:"valueHash"`
}

// ListingSummary describes a canonical listing stored or computed by a tool.
type ListingSummary struct {
	CID     string         `json:"cid"`
	Entries int            `json:"entries"`
	Hasher  string         `json:"hasher,omitempty"`
	Mode    ComplianceMode `json:"mode,omitempty"`
}
