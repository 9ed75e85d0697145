package astro

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the base error for all constructor rejections.
// Use errors.Is against it to match any invalid-parameter failure.
var ErrInvalidArgument = errors.New("astro: invalid argument")

var (
	// ErrNonPositiveMass indicates a particle or halo mass <= 0.
	ErrNonPositiveMass = fmt.Errorf("%w: mass must be positive", ErrInvalidArgument)

	// ErrNonPositiveRadius indicates a scale radius <= 0.
	ErrNonPositiveRadius = fmt.Errorf("%w: scale radius must be positive", ErrInvalidArgument)

	// ErrNonPositiveConcentration indicates a virial concentration <= 0.
	ErrNonPositiveConcentration = fmt.Errorf("%w: concentration must be positive", ErrInvalidArgument)
)
