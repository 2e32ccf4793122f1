package game

import (
	"errors"
	"fmt"
)

// Move packs a sub-board index in the high nibble and a cell index within
// that sub-board in the low nibble.
type Move uint8

// NoMove is returned when a position has no legal move.
const NoMove Move = 0xFF

var ErrOutOfRange = errors.New("coordinate out of range")

func NewMove(subBoard, cell int) Move {
	return Move(subBoard<<4 | cell)
}

func (m Move) SubBoard() int {
	return int(m >> 4)
}

func (m Move) Cell() int {
	return int(m & 0x0F)
}

// RowCol converts the move to coordinates on the 9×9 grid.
func (m Move) RowCol() (row, col int) {
	b, c := m.SubBoard(), m.Cell()
	row = b/GridSize*GridSize + c/GridSize
	col = b%GridSize*GridSize + c%GridSize
	return row, col
}

// MoveFromRowCol converts coordinates on the 9×9 grid to a move. Inputs are
// assumed to be in [0,9).
func MoveFromRowCol(row, col int) Move {
	subBoard := row/GridSize*GridSize + col/GridSize
	cell := row%GridSize*GridSize + col%GridSize
	return NewMove(subBoard, cell)
}

// ParseRowCol is MoveFromRowCol for untrusted input.
func ParseRowCol(row, col int) (Move, error) {
	if row < 0 || row >= NumCells || col < 0 || col >= NumCells {
		return NoMove, fmt.Errorf("row %d col %d: %w", row, col, ErrOutOfRange)
	}
	return MoveFromRowCol(row, col), nil
}

func (m Move) String() string {
	if m == NoMove {
		return "none"
	}
	row, col := m.RowCol()
	return fmt.Sprintf("%c%d", 'a'+col, row+1)
}
