package shapes

import "fmt"

// Rectangle is an axis-aligned rectangle whose width and height change
// independently.
type Rectangle struct {
	box
}

var _ Shape = (*Rectangle)(nil)

// NewRectangle returns a rectangle of the given size. It returns
// ErrInvalidDimension when either dimension is negative. Zero is allowed.
func NewRectangle(width, height float64) (*Rectangle, error) {
	b, err := newBox(width, height)
	if err != nil {
		return nil, err
	}
	return &Rectangle{box: b}, nil
}

// SetWidth changes the width only.
func (r *Rectangle) SetWidth(w float64) error {
	if err := checkDimension("width", w); err != nil {
		return err
	}
	r.width = w
	return nil
}

// SetHeight changes the height only.
func (r *Rectangle) SetHeight(h float64) error {
	if err := checkDimension("height", h); err != nil {
		return err
	}
	r.height = h
	return nil
}

// String returns "Rectangle(width=<w>, height=<h>)".
func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%s, height=%s)", formatDimension(r.width), formatDimension(r.height))
}
