package phystech

import "errors"

// Common errors.
var (
	// ErrNotFound reports that no node path contains the searched name.
	ErrNotFound = errors.New("channel not found")

	// ErrMissingMaster reports that the master position channel could not
	// be resolved at construction. The File is not usable afterwards.
	ErrMissingMaster = errors.New("master position channel not found")

	// ErrSchemaViolation reports channel records that break the producer
	// contract: a missing or non-numeric position-counter field, fewer
	// than two record fields, or a counter outside [1, maxPos].
	ErrSchemaViolation = errors.New("channel records violate the expected layout")

	// ErrClosed reports use of a File after Close.
	ErrClosed = errors.New("file is closed")
)
