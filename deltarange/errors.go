package deltarange

import "github.com/pkg/errors"

var (
	ErrInvalidBounds       = errors.New("lower sampling bound must be less than upper bound")
	ErrInvalidReference    = errors.New("reference rectangle must have positive width and height")
	ErrInvalidThreshold    = errors.New("IoU threshold must be in [0, 1)")
	ErrInvalidProgress     = errors.New("progress interval must not be negative")
	ErrInvalidAttempts     = errors.New("attempts and skips limits must not be negative")
	ErrAcceptanceExhausted = errors.New("no box passed IoU threshold")
	ErrDegenerateBox       = errors.New("box has zero width or height")
)
