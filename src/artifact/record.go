// Package artifact locates compiled contract build artifacts on disk and
// measures the bytecode they carry.
package artifact

import (
	"errors"
	"fmt"
)

// SizeLimit is the maximum deployable contract size in bytes (24 KB).
const SizeLimit = 24576

// ErrRootNotFound is returned when the artifacts root directory is missing
// or cannot be listed.
var ErrRootNotFound = errors.New("artifacts root not found")

// Record is the measured size of a single contract artifact.
type Record struct {
	Name      string
	SizeBytes int
	Path      string // artifact file the record was read from
}

// SizeKB returns SizeBytes in kilobytes with two decimals, rounding halves up.
func (r Record) SizeKB() string {
	cents := (r.SizeBytes*100 + 512) / 1024
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ExceedsLimit reports whether the record is strictly larger than SizeLimit.
func (r Record) ExceedsLimit() bool {
	return r.SizeBytes > SizeLimit
}
