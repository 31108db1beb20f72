package bingo

// Line is a winning bingo line as five 0-based cell indices in row-major
// order.
type Line [Size]int

var (
	lines      = buildLines()
	neighbours = buildNeighbours(lines)
)

func buildLines() []Line {
	out := make([]Line, 0, 2*Size+2)
	for r := 0; r < Size; r++ {
		var l Line
		for c := 0; c < Size; c++ {
			l[c] = r*Size + c
		}
		out = append(out, l)
	}
	for c := 0; c < Size; c++ {
		var l Line
		for r := 0; r < Size; r++ {
			l[r] = r*Size + c
		}
		out = append(out, l)
	}
	var diag, anti Line
	for k := 0; k < Size; k++ {
		diag[k] = k*Size + k
		anti[k] = k*Size + (Size - 1 - k)
	}
	return append(out, diag, anti)
}

// buildNeighbours lists, per cell, every other cell sharing a line with it.
// Lines only intersect in one cell, so no neighbour is listed twice.
func buildNeighbours(ls []Line) [Cells][]int {
	var n [Cells][]int
	for _, l := range ls {
		for _, cell := range l {
			for _, other := range l {
				if other != cell {
					n[cell] = append(n[cell], other)
				}
			}
		}
	}
	return n
}

// Lines returns the twelve winning lines: five rows, five columns, then the
// main diagonal and the anti-diagonal.
func Lines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Neighbours returns the 0-based cells that share a line with cell.
func Neighbours(cell int) []int {
	out := make([]int, len(neighbours[cell]))
	copy(out, neighbours[cell])
	return out
}
