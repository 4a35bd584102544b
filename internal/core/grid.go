package core

import "gonum.org/v1/gonum/floats"

// Energy constrains the cell types a Grid can hold.
type Energy interface {
	~float64 | ~uint64
}

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid stores a 2D grid of energy values in row-major order.
type Grid[T Energy] struct {
	W, H int
	data []T
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid[T Energy](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the value stored at (row, col).
func (g *Grid[T]) At(row, col int) T { return g.data[row*g.W+col] }

// Set overwrites the value at (row, col).
func (g *Grid[T]) Set(row, col int, v T) { g.data[row*g.W+col] = v }

// Add accumulates v into the cell at (row, col).
func (g *Grid[T]) Add(row, col int, v T) { g.data[row*g.W+col] += v }

// SameSize reports whether both grids share dimensions.
func (g *Grid[T]) SameSize(o *Grid[T]) bool {
	return o != nil && g.W == o.W && g.H == o.H
}

// CopyFrom overwrites g with the contents of src. Both grids must share dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) { copy(g.data, src.data) }

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{W: g.W, H: g.H, data: append([]T(nil), g.data...)}
}

// Clear fills the grid with zeros.
func (g *Grid[T]) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Sum returns the total energy held by the grid.
func (g *Grid[T]) Sum() float64 {
	if vals, ok := any(g.data).([]float64); ok {
		return floats.Sum(vals)
	}
	total := 0.0
	for _, v := range g.data {
		total += float64(v)
	}
	return total
}

// NonZero counts the cells holding a nonzero value.
func (g *Grid[T]) NonZero() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Values converts the grid contents to float64 in row-major order.
func (g *Grid[T]) Values() []float64 {
	out := make([]float64, len(g.data))
	for i, v := range g.data {
		out[i] = float64(v)
	}
	return out
}
