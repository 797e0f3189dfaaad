package model

import (
	"errors"
	"fmt"
)

// Lookup failures. Wrapped with the offending id, test with errors.Is.
var (
	ErrModalityNotFound = errors.New("modality does not exist")
	ErrRegionNotFound   = errors.New("region not found")
	ErrReadNotFound     = errors.New("read not found")
	ErrModalityMismatch = errors.New("top-level region does not correspond to modality")
)

// ErrNullEntry rejects a null element in a list of regions or reads.
var ErrNullEntry = errors.New("null entry")

// ConsistencyError reports a library_spec entry whose region_id disagrees
// with the modality at the same index.
type ConsistencyError struct {
	Modality string
	RegionID string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("top-level region id '%s' does not correspond to modality '%s'", e.RegionID, e.Modality)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrModalityMismatch
}

// ParseError wraps a failure to decode a serialized document.
type ParseError struct {
	Kind string // "region", "read", "assay", ...
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
