package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrResolution marks a natural key (team abbreviation, player name) with
	// no matching persisted entity. Fatal: the static team table or the
	// source data must be corrected before re-running.
	ErrResolution = errors.New("unresolvable reference")

	// ErrDataShape marks a fetched table whose layout does not match what the
	// category's cleanup rules anticipate. Aborting beats mis-mapping columns.
	ErrDataShape = errors.New("unexpected table shape")
)
