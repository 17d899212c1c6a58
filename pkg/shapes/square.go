package shapes

import "fmt"

// Square is a shape whose width and height are always equal. Every setter
// moves both dimensions together.
type Square struct {
	box
}

var _ Shape = (*Square)(nil)

// NewSquare returns a square with the given side. It returns
// ErrInvalidDimension when side is negative.
func NewSquare(side float64) (*Square, error) {
	if err := checkDimension("side", side); err != nil {
		return nil, err
	}
	return &Square{box: box{width: side, height: side}}, nil
}

// Side returns the common width and height.
func (s *Square) Side() float64 { return s.width }

// SetSide sets both width and height to side.
func (s *Square) SetSide(side float64) error {
	if err := checkDimension("side", side); err != nil {
		return err
	}
	s.width = side
	s.height = side
	return nil
}

// SetWidth is SetSide.
func (s *Square) SetWidth(w float64) error { return s.SetSide(w) }

// SetHeight is SetSide.
func (s *Square) SetHeight(h float64) error { return s.SetSide(h) }

// String returns "Square(side=<side>)".
func (s *Square) String() string {
	return fmt.Sprintf("Square(side=%s)", formatDimension(s.width))
}
