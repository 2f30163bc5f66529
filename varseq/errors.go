package varseq

import "errors"

// Sentinel errors for sequence operations.
// Callers should use errors.Is to check.
var (
	// ErrUnsupportedMutation indicates an attempt to overwrite a generated element.
	ErrUnsupportedMutation = errors.New("varseq: generated elements cannot be assigned")
	// ErrInvalidConstruction indicates arguments passed to a constructor that takes none.
	ErrInvalidConstruction = errors.New("varseq: constructor cannot take args directly")
)
