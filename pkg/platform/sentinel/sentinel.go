package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Registries return these
// (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: no record with the requested id
// - ErrUnavailable: a collaborator could not be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
