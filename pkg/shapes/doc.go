// Package shapes models axis-aligned rectangles and squares.
//
// Rectangle and Square both satisfy the Shape interface. They share the
// computed operations (area, perimeter, diagonal, picture, containment)
// but own their mutation rules: a Rectangle changes one axis at a time,
// a Square always changes both so that width and height stay equal.
//
// Dimensions are non-negative float64 values. Constructors and setters
// reject negative, NaN and infinite input with ErrInvalidDimension.
package shapes
