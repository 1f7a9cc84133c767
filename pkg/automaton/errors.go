package automaton

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive grid width or height.
	ErrInvalidDimension = errors.New("automaton: grid width and height must be positive")
	// ErrInvalidState indicates a step was requested before any grid exists.
	ErrInvalidState = errors.New("automaton: no grid has been generated")
	// ErrInvalidParameter indicates a probability, threshold or step count out of range.
	ErrInvalidParameter = errors.New("automaton: parameter out of range")
)
