package transcription

import "errors"

// Every message is prefixed with "transcription:" so failures are easy to grep
// for in solver logs. Callers match with errors.Is; producers add context with
// fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidConfiguration is returned for a degree < 1, an empty, unsorted or
	// non-normalized mesh, a bad time horizon, an unknown scheme or a malformed
	// problem descriptor. Detected at construction.
	ErrInvalidConfiguration = errors.New("transcription: invalid configuration")

	// ErrBasisConstruction is returned when root finding or the Vandermonde
	// inversion for the requested degree does not succeed.
	ErrBasisConstruction = errors.New("transcription: basis construction failed")

	// ErrInvalidMesh is returned when a mesh interval has non-positive duration.
	ErrInvalidMesh = errors.New("transcription: invalid mesh")

	// ErrDimensionMismatch is returned when a trial matrix does not have the
	// shape implied by the problem counts, the degree and the grid size.
	ErrDimensionMismatch = errors.New("transcription: dimension mismatch")
)
