// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It has no Bubble Tea dependency so game
// logic stays pure and testable.
package core

// Point is a (row, column) grid coordinate.
type Point struct {
	Row, Col int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
