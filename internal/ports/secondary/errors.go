package secondary

import "errors"

// Error sentinels shared by every storage adapter. Callers classify
// repository failures with errors.Is: ErrNotFound and ErrConstraint are
// recoverable per record; anything else means the store itself failed and
// must abort the operation in progress.
var (
	// ErrNotFound signals that a referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint signals that the store rejected a mutation that would
	// violate a schema constraint.
	ErrConstraint = errors.New("constraint violation")
)
