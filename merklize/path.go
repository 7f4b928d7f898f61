package merklize

import (
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a predicate label or an array index.
type Segment struct {
	label   string
	index   int
	isIndex bool
}

func Label(s string) Segment { return Segment{label: s} }
func Index(i int) Segment    { return Segment{index: i, isIndex: true} }

func (s Segment) IsIndex() bool { return s.isIndex }

// Label returns the predicate label; it is empty for index segments.
func (s Segment) Label() string { return s.label }

// Index returns the array index; it is -1 for label segments.
func (s Segment) Index() int {
	if !s.isIndex {
		return -1
	}
	return s.index
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.label
}

// Path is the canonical root-to-leaf location of a value.
type Path struct {
	segments []Segment
}

// NewPath validates and copies segments. Index segments must be non-negative
// and label segments non-empty.
func NewPath(segments ...Segment) (Path, error) {
	for _, s := range segments {
		if s.isIndex && s.index < 0 {
			return Path{}, newError(KindInvalidArgument, ruleNegIndex, "negative path index "+strconv.Itoa(s.index))
		}
		if !s.isIndex && s.label == "" {
			return Path{}, newError(KindInvalidArgument, ruleEmptyLabel, "empty path label")
		}
	}
	return Path{segments: slices.Clone(segments)}, nil
}

// MustPath is NewPath for literals in tests and fixtures. It panics on error.
func MustPath(segments ...Segment) Path {
	p, err := NewPath(segments...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment { return slices.Clone(p.segments) }

func (p Path) Equal(o Path) bool { return slices.Equal(p.segments, o.segments) }

// String joins segments with " / ". It is for diagnostics only; labels are
// IRIs and may themselves contain slashes.
func (p Path) String() string {
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " / ") + "]"
}

// Hash reduces the path to a field element: each label is hashed with
// HashBytes, each index is used as is, and the resulting sequence is hashed
// with Hash.
func (p Path) Hash(h Hasher) (*big.Int, error) {
	if len(p.segments) == 0 {
		return nil, newError(KindInvalidArgument, ruleEmptyPath, "empty path")
	}
	parts := make([]*big.Int, len(p.segments))
	for i, s := range p.segments {
		if s.isIndex {
			parts[i] = big.NewInt(int64(s.index))
			continue
		}
		v, err := h.HashBytes([]byte(s.label))
		if err != nil {
			return nil, err
		}
		parts[i] = v
	}
	return h.Hash(parts)
}

// pathBuilder accumulates segments leaf-to-root.
type pathBuilder struct {
	segments []Segment
}

func (b *pathBuilder) appendIndex(i int)    { b.segments = append(b.segments, Index(i)) }
func (b *pathBuilder) appendLabel(s string) { b.segments = append(b.segments, Label(s)) }

func (b *pathBuilder) build() Path {
	slices.Reverse(b.segments)
	return Path{segments: b.segments}
}
