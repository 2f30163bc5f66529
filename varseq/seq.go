package varseq

import (
	"fmt"
	"slices"
	"strconv"
)

// GenerateFunc returns the element to append at index n, the sequence's current length.
type GenerateFunc func(n int) string

// Seq is an ordered list of strings that generates missing elements on read.
// Not safe for concurrent use while it grows.
type Seq struct {
	kind string
	gen  GenerateFunc
	data []string
}

// New returns an empty sequence backed by gen. kind names the sequence in String.
// Panics if gen is nil.
func New(kind string, gen GenerateFunc) *Seq {
	if gen == nil {
		panic("varseq: GenerateFunc must not be nil")
	}
	return &Seq{kind: kind, gen: gen}
}

// Get returns element i, generating elements up to i if needed.
// Panics if i is negative.
func (s *Seq) Get(i int) string {
	if i < 0 {
		panic("varseq: index out of range [" + strconv.Itoa(i) + "]")
	}
	for len(s.data) <= i {
		s.data = append(s.data, s.gen(len(s.data)))
	}
	return s.data[i]
}

// Set always fails: elements are derived, never assigned.
func (s *Seq) Set(i int, v string) error {
	return fmt.Errorf("%w: %s[%d] = %q", ErrUnsupportedMutation, s.kind, i, v)
}

// Slice returns a copy of the generated elements in [lo, hi).
// Bounds are clamped to the current length; nothing is generated.
func (s *Seq) Slice(lo, hi int) []string {
	lo = max(0, min(lo, len(s.data)))
	hi = max(lo, min(hi, len(s.data)))
	return slices.Clone(s.data[lo:hi])
}

// Len returns the number of generated elements.
func (s *Seq) Len() int { return len(s.data) }

// Values returns a copy of the generated elements.
func (s *Seq) Values() []string { return slices.Clone(s.data) }

// String implements fmt.Stringer, e.g. <VarSeq ["CONST_0" "CONST_1"]>.
func (s *Seq) String() string {
	return fmt.Sprintf("<%s %q>", s.kind, s.data)
}
