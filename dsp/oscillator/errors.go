package oscillator

import "errors"

// Errors returned by the oscillator filter.
var (
	ErrNotInitialized      = errors.New("oscillator: parameters not set, call UpdateParameters first")
	ErrZeroMass            = errors.New("oscillator: mass must be nonzero")
	ErrInvalidSamplePeriod = errors.New("oscillator: sample period must be positive")
	ErrNonFiniteParameter  = errors.New("oscillator: parameters must be finite")
	ErrNonFiniteState      = errors.New("oscillator: state contains NaN or Inf")
	ErrInvalidLength       = errors.New("oscillator: sample count must be positive")
	ErrLengthMismatch      = errors.New("oscillator: buffer length mismatch")
)
