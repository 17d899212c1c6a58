package shapes

import (
	"errors"
	"fmt"
	"math"
)

// Shape errors.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrOverflow         = errors.New("result out of range")
)

// checkDimension returns ErrInvalidDimension, annotated with the axis name,
// when v cannot be a dimension.
func checkDimension(axis string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a non-negative number, got %s", ErrInvalidDimension, axis, formatDimension(v))
	}
	return nil
}
