package services

import "errors"

var (
	// ErrCatalogUnavailable means the reference data could not be loaded or
	// has not been loaded; affected endpoints degrade instead of crashing
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnknownDestination means the destination id is not in the catalog
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrUnknownAccommodation means the accommodation id is not in the
	// catalog or is not offered at the selected destination
	ErrUnknownAccommodation = errors.New("unknown accommodation")

	// ErrSessionNotFound means the form session id does not exist
	ErrSessionNotFound = errors.New("form session not found")

	// ErrRosterFull means the roster already holds maxPassengers entries
	ErrRosterFull = errors.New("passenger limit reached for this party type")

	// ErrNoSuchPassenger means the target ordinal does not exist
	ErrNoSuchPassenger = errors.New("passenger not found")

	// ErrNotRemovable means the entry carries no remove affordance
	ErrNotRemovable = errors.New("passenger cannot be removed")

	// ErrUnknownPartyType means the party type is not solo, couple or group
	ErrUnknownPartyType = errors.New("unknown party type")

	// ErrNoActiveSession is the auth-gate branch, not a failure: the submit
	// is parked as a pending draft until the user logs in
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidCredentials means the login input failed the shape checks
	ErrInvalidCredentials = errors.New("invalid email or password format")

	// ErrBookingNotFound means no booking record matches the id
	ErrBookingNotFound = errors.New("booking not found")
)
