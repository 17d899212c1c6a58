package shapes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Picture limits and fill.
const (
	MaxPictureDimension = 50
	PictureFill         = "*"
	TooBigForPicture    = "Too big for picture."
)

// Shape is the capability set shared by Rectangle and Square.
type Shape interface {
	Width() float64
	Height() float64

	// SetWidth and SetHeight reject invalid dimensions and leave the shape
	// unchanged on error.
	SetWidth(w float64) error
	SetHeight(h float64) error

	Area() float64
	Perimeter() float64
	Diagonal() float64
	Picture() string

	// AmountInside counts non-rotated copies of other that fit in this
	// shape's bounding box.
	AmountInside(other Shape) (int, error)

	String() string
}

// box holds the dimensions and the computed operations common to every
// shape. It carries no mutation policy of its own.
type box struct {
	width  float64
	height float64
}

func newBox(width, height float64) (box, error) {
	if err := checkDimension("width", width); err != nil {
		return box{}, err
	}
	if err := checkDimension("height", height); err != nil {
		return box{}, err
	}
	return box{width: width, height: height}, nil
}

// Width returns the horizontal dimension.
func (b *box) Width() float64 { return b.width }

// Height returns the vertical dimension.
func (b *box) Height() float64 { return b.height }

// Area returns width * height.
func (b *box) Area() float64 {
	return b.width * b.height
}

// Perimeter returns 2 * (width + height).
func (b *box) Perimeter() float64 {
	return 2 * (b.width + b.height)
}

// Diagonal returns sqrt(width^2 + height^2).
func (b *box) Diagonal() float64 {
	return math.Hypot(b.width, b.height)
}

// Picture renders the shape as height lines of width asterisks, each line
// terminated by a newline. Shapes wider or taller than MaxPictureDimension
// render as TooBigForPicture. Fractional dimensions are floored.
func (b *box) Picture() string {
	if b.width > MaxPictureDimension || b.height > MaxPictureDimension {
		return TooBigForPicture
	}
	row := strings.Repeat(PictureFill, int(b.width)) + "\n"
	return strings.Repeat(row, int(b.height))
}

// AmountInside returns floor(width/other.width) * floor(height/other.height).
// Rotating other is not considered.
func (b *box) AmountInside(other Shape) (int, error) {
	if other == nil {
		return 0, fmt.Errorf("%w: nil shape", ErrInvalidDimension)
	}
	ow, oh := other.Width(), other.Height()
	if ow == 0 || oh == 0 {
		return 0, fmt.Errorf("%w: %s has a zero dimension", ErrDivisionByZero, other)
	}
	across := math.Floor(b.width / ow)
	down := math.Floor(b.height / oh)
	if across == 0 || down == 0 {
		return 0, nil
	}
	count := across * down
	if !(count < math.MaxInt) {
		return 0, fmt.Errorf("%w: %s fits %g times inside %s", ErrOverflow, other, count, b.describe())
	}
	return int(count), nil
}

func (b *box) describe() string {
	return fmt.Sprintf("%sx%s box", formatDimension(b.width), formatDimension(b.height))
}

// formatDimension renders v in its shortest decimal form: 10 not 10.0.
func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
