package varseq

import (
	"fmt"
	"reflect"
	"slices"
)

// PosArgs is an immutable list of positional arguments built by chaining:
//
//	args, _ := NewPosArgs()
//	args.Attr("src").Attr("dst").Args() // ["src" "dst"]
//
// Every step returns a new list, so branches from a shared prefix never
// affect each other.
type PosArgs struct {
	segments []string
}

// NewPosArgs returns an empty list. Segments are added with Attr and Call;
// passing any argument here fails with ErrInvalidConstruction.
func NewPosArgs(args ...string) (PosArgs, error) {
	if len(args) > 0 {
		return PosArgs{}, fmt.Errorf("%w: got %d", ErrInvalidConstruction, len(args))
	}
	return PosArgs{}, nil
}

// Attr returns a new list with name appended.
func (a PosArgs) Attr(name string) PosArgs {
	return PosArgs{segments: append(slices.Clip(a.segments), name)}
}

// Call appends fmt.Sprint(arg). A nil or zero-valued arg, an empty slice, map
// or array, or one that prints as "", resets: the result is an empty list.
func (a PosArgs) Call(arg any) PosArgs {
	if isZero(arg) {
		return PosArgs{}
	}
	s := fmt.Sprint(arg)
	if s == "" {
		return PosArgs{}
	}
	return a.Attr(s)
}

func isZero(arg any) bool {
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	}
	return v.IsZero()
}

// Args returns a copy of the segments.
func (a PosArgs) Args() []string {
	if a.segments == nil {
		return []string{}
	}
	return slices.Clone(a.segments)
}

// Len returns the number of segments.
func (a PosArgs) Len() int { return len(a.segments) }

// String implements fmt.Stringer.
func (a PosArgs) String() string {
	return fmt.Sprintf("<PosArgs %q>", a.Args())
}
