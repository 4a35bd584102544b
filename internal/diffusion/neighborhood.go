package diffusion

import "entropy/internal/core"

// PatchKind classifies a cell by its position relative to the grid border.
type PatchKind uint8

const (
	// PatchInterior is a 3x3 patch centred on the cell.
	PatchInterior PatchKind = iota
	// PatchCorner is a 2x2 patch anchored at a grid corner.
	PatchCorner
	// PatchTopBottom is a 2x3 patch anchored at the top or bottom row.
	PatchTopBottom
	// PatchLeftRight is a 3x2 patch anchored at the left or right column.
	PatchLeftRight
)

func (k PatchKind) String() string {
	switch k {
	case PatchInterior:
		return "interior"
	case PatchCorner:
		return "corner"
	case PatchTopBottom:
		return "top-bottom"
	case PatchLeftRight:
		return "left-right"
	}
	return "unknown"
}

// Patch is the rectangle of cells a continuous step spreads one cell's
// energy into. Row and Col address its top-left cell.
type Patch struct {
	Row, Col   int
	Rows, Cols int
	Kind       PatchKind
}

// Size returns the number of cells covered by the patch.
func (p Patch) Size() int { return p.Rows * p.Cols }

// Contains reports whether (row, col) lies inside the patch.
func (p Patch) Contains(row, col int) bool {
	return row >= p.Row && row < p.Row+p.Rows && col >= p.Col && col < p.Col+p.Cols
}

// ClassifyPatch returns the patch for cell (i, j) on an h x w grid with
// h, w >= 2. Corners take precedence over the top/bottom rows, which take
// precedence over the left/right columns. Border patches are anchored at the
// border rather than centred on the cell.
func ClassifyPatch(i, j, h, w int) Patch {
	top, bottom := i == 0, i == h-1
	left, right := j == 0, j == w-1

	anchorRow := 0
	if bottom {
		anchorRow = h - 2
	}
	anchorCol := 0
	if right {
		anchorCol = w - 2
	}

	switch {
	case (top || bottom) && (left || right):
		return Patch{Row: anchorRow, Col: anchorCol, Rows: 2, Cols: 2, Kind: PatchCorner}
	case top || bottom:
		return Patch{Row: anchorRow, Col: j - 1, Rows: 2, Cols: 3, Kind: PatchTopBottom}
	case left || right:
		return Patch{Row: i - 1, Col: anchorCol, Rows: 3, Cols: 2, Kind: PatchLeftRight}
	}
	return Patch{Row: i - 1, Col: j - 1, Rows: 3, Cols: 3, Kind: PatchInterior}
}

// Neighbors appends the in-bounds cells of the 3x3 block centred on (i, j)
// to dst[:0] in row-major order and returns the result. The centre cell is
// included, so corners yield 4 entries, edges 6 and interior cells 9.
func Neighbors(i, j, h, w int, dst []core.Coord) []core.Coord {
	dst = dst[:0]
	for r := i - 1; r <= i+1; r++ {
		if r < 0 || r >= h {
			continue
		}
		for c := j - 1; c <= j+1; c++ {
			if c < 0 || c >= w {
				continue
			}
			dst = append(dst, core.Coord{Row: r, Col: c})
		}
	}
	return dst
}
