package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	sq, err := NewSquare(9)
	require.NoError(t, err)
	assert.Equal(t, 81.0, sq.Area())
	assert.Equal(t, 9.0, sq.Side())

	t.Run("negative side", func(t *testing.T) {
		sq, err := NewSquare(-1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Nil(t, sq)
	})

	t.Run("negative side as rectangle", func(t *testing.T) {
		_, err := NewRectangle(-1, -1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestSquareSetSide(t *testing.T) {
	sq, err := NewSquare(9)
	require.NoError(t, err)

	require.NoError(t, sq.SetSide(4))
	assert.InDelta(t, 5.65685, sq.Diagonal(), 1e-5)
	assert.InDelta(t, 4*math.Sqrt2, sq.Diagonal(), 1e-12)
	assert.Equal(t, "Square(side=4)", sq.String())
	assert.Equal(t, "****\n****\n****\n****\n", sq.Picture())
}

func TestSquareInvariant(t *testing.T) {
	sq, err := NewSquare(1)
	require.NoError(t, err)

	steps := []struct {
		name string
		set  func(float64) error
		v    float64
	}{
		{"SetWidth", sq.SetWidth, 7},
		{"SetHeight", sq.SetHeight, 3},
		{"SetSide", sq.SetSide, 12.5},
		{"SetWidth", sq.SetWidth, 0},
		{"SetHeight", sq.SetHeight, 2},
	}

	for _, step := range steps {
		require.NoError(t, step.set(step.v), step.name)
		assert.Equal(t, step.v, sq.Width(), "%s(%v) width", step.name, step.v)
		assert.Equal(t, sq.Width(), sq.Height(), "%s(%v) must keep width == height", step.name, step.v)
	}
}

func TestSquareRejectsNegativeSide(t *testing.T) {
	sq, err := NewSquare(5)
	require.NoError(t, err)

	for name, set := range map[string]func(float64) error{
		"SetWidth":  sq.SetWidth,
		"SetHeight": sq.SetHeight,
		"SetSide":   sq.SetSide,
	} {
		err := set(-3)
		assert.ErrorIs(t, err, ErrInvalidDimension, name)
		assert.Equal(t, 5.0, sq.Width(), name)
		assert.Equal(t, 5.0, sq.Height(), name)
	}
}

func TestSquareThroughShapeInterface(t *testing.T) {
	var s Shape
	sq, err := NewSquare(2)
	require.NoError(t, err)
	s = sq

	require.NoError(t, s.SetWidth(6))
	assert.Equal(t, 6.0, s.Height())
	assert.Equal(t, 36.0, s.Area())
	assert.Equal(t, 24.0, s.Perimeter())
	assert.Equal(t, "Square(side=6)", s.String())
}
