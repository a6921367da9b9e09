package service

import "errors"

// Sentinel errors returned by Adapter.Handle. Callers map these to transport
// status codes with errors.Is; the mapping itself lives at the HTTP boundary
// (internal/hostproc), not here, so this package stays transport-agnostic.
var (
	// ErrBadRequest covers malformed request content: a batch with zero
	// polygons, or a polygon whose outline has no points. A body that is not
	// valid JSON is rejected at the HTTP boundary before it reaches Handle.
	ErrBadRequest = errors.New("service: malformed request")

	// ErrInvalidTolerances is returned when the request's tolerances fail
	// validation (negative values).
	ErrInvalidTolerances = errors.New("service: invalid tolerances")
)
