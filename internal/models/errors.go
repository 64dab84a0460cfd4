package models

import "errors"

// Custom errors
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key violation")
	ErrInvalidID         = errors.New("invalid ID format")
	ErrFighterNotFound   = errors.New("fighter not found")
	ErrFighterRequired   = errors.New("both fighters are required")
	ErrInvalidRoundCount = errors.New("round count must be 3 or 5")
	ErrInvalidRunCount   = errors.New("invalid simulation run count")
)
