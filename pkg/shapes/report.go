package shapes

import (
	"fmt"
	"math"
)

// Shape kinds reported by Describe.
const (
	KindRectangle = "rectangle"
	KindSquare    = "square"
)

// Report is a snapshot of every computed property of a shape.
type Report struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Area      float64 `json:"area" yaml:"area"`
	Perimeter float64 `json:"perimeter" yaml:"perimeter"`
	Diagonal  float64 `json:"diagonal" yaml:"diagonal"`
	Picture   string  `json:"picture" yaml:"picture"`
	String    string  `json:"string" yaml:"string"`
}

// Describe captures the current state of s.
func Describe(s Shape) Report {
	kind := KindRectangle
	if _, ok := s.(*Square); ok {
		kind = KindSquare
	}
	return Report{
		Kind:      kind,
		Width:     s.Width(),
		Height:    s.Height(),
		Area:      s.Area(),
		Perimeter: s.Perimeter(),
		Diagonal:  s.Diagonal(),
		Picture:   s.Picture(),
		String:    s.String(),
	}
}

// Validate returns ErrOverflow when a computed value is not finite, which
// happens for dimensions near the float64 limit.
func (r Report) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"area", r.Area},
		{"perimeter", r.Perimeter},
		{"diagonal", r.Diagonal},
	} {
		if math.IsInf(f.v, 0) || math.IsNaN(f.v) {
			return fmt.Errorf("%w: %s of %s is %v", ErrOverflow, f.name, r.String, f.v)
		}
	}
	return nil
}
