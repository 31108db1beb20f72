package bingo

import "strings"

const (
	// Size is the width and height of a board.
	Size = 5
	// Cells is the number of cells on a board.
	Cells = Size * Size
)

// Board is a finished 5x5 grid of goal names in row-major order.
type Board struct {
	Cells [Size][Size]string
}

// Cell returns the goal name at a 0-based row and column.
func (b Board) Cell(row, col int) string {
	return b.Cells[row][col]
}

// At returns the goal name at a 0-based row-major index.
func (b Board) At(index int) string {
	return b.Cells[index/Size][index%Size]
}

// Rows returns the board as a slice of rows.
func (b Board) Rows() [][]string {
	rows := make([][]string, Size)
	for r := range b.Cells {
		rows[r] = append([]string(nil), b.Cells[r][:]...)
	}
	return rows
}

// Flat returns all 25 goal names in row-major order.
func (b Board) Flat() []string {
	out := make([]string, 0, Cells)
	for r := range b.Cells {
		out = append(out, b.Cells[r][:]...)
	}
	return out
}

// String renders one row per line with tab-separated cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := range b.Cells {
		sb.WriteString(strings.Join(b.Cells[r][:], "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FirstDifference returns the first row-major index at which b and other
// differ, or -1 when they are identical.
func (b Board) FirstDifference(other Board) int {
	for i := 0; i < Cells; i++ {
		if b.At(i) != other.At(i) {
			return i
		}
	}
	return -1
}

// BoardFromRows builds a Board from exactly five rows of five cells.
func BoardFromRows(rows [][]string) (Board, bool) {
	var b Board
	if len(rows) != Size {
		return b, false
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, false
		}
		copy(b.Cells[r][:], row)
	}
	return b, true
}
