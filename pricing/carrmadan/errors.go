package carrmadan

import "errors"

var (
	// ErrUnsupportedSize is returned when the FFT backend cannot plan a
	// transform of the requested length.
	ErrUnsupportedSize = errors.New("carrmadan: unsupported transform size")

	// ErrEmptyQuotes is returned when interpolating over no quotes.
	ErrEmptyQuotes = errors.New("carrmadan: quotes must not be empty")

	// ErrStrikesNotIncreasing is returned when quote strikes are not
	// strictly increasing.
	ErrStrikesNotIncreasing = errors.New("carrmadan: quote strikes must be strictly increasing")

	// ErrInvalidStrike is returned for a non-positive or NaN strike.
	ErrInvalidStrike = errors.New("carrmadan: strike must be > 0")
)
