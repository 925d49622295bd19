// Package grid has the 2-D points and rectangular grids shared by the
// map-shaped puzzles.
package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a point on an integer plane. Y grows downward for grids and upward
// for the rope simulation; the type does not care.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common int point.
type Pt = Pt2[int]

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Touching reports whether a and b are the same point or adjacent, including
// diagonally.
func (a Pt2[T]) Touching(b Pt2[T]) bool {
	return AbsDiff(a.X, b.X) <= 1 && AbsDiff(a.Y, b.Y) <= 1
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// Direction is one of the four orthogonal unit steps.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the orthogonal directions in clockwise order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the unit vector for d, with Up as -Y.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return ""
}

// Grid is a rectangular row-major grid indexed as g[y][x].
type Grid[T any] [][]T

// Make returns a width x height grid of zero values.
func Make[T any](width, height int) Grid[T] {
	out := make(Grid[T], height)
	for i := range out {
		out[i] = make([]T, width)
	}
	return out
}

// Size returns the width and height as a point.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the cell at p. It panics if p is outside the grid.
func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// AtOk returns the cell at p and whether p was inside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Set stores v at p.
func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// Rectangular reports whether every row has the same length.
func (g Grid[T]) Rectangular() bool {
	for _, row := range g {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

// ForImmediateNeighbors calls f for each orthogonal neighbor of p that lies
// inside the grid, stopping early if f returns false.
func (g Grid[T]) ForImmediateNeighbors(p Pt, f func(n Pt) (keepGoing bool)) {
	for _, d := range Directions {
		n := p.Add(d.Delta())
		if !g.In(n) {
			continue
		}
		if !f(n) {
			return
		}
	}
}

// Walk returns the cells from p (exclusive) to the edge of the grid in
// direction d, nearest first.
func (g Grid[T]) Walk(p Pt, d Direction) []T {
	var out []T
	for n := p.Add(d.Delta()); g.In(n); n = n.Add(d.Delta()) {
		out = append(out, g.At(n))
	}
	return out
}
