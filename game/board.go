package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math/bits"
	"strings"
)

// Board is the full game state. It is a plain value: copying a Board
// copies the position.
type Board struct {
	Cells    [2][NumCells]uint16 `json:"cells"`    // occupancy per player per sub-board
	Outer    [2]uint16           `json:"outer"`    // sub-boards won per player
	Playable uint16              `json:"playable"` // sub-boards the side to move may play in
	Finished uint16              `json:"finished"` // sub-boards won or drawn
	Turn     Player              `json:"turn"`
}

type StateHash uint64

type Outcome int

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

var ErrInvalidBoard = errors.New("invalid board")

// NewBoard returns an empty board with X to move.
func NewBoard() Board {
	return Board{Playable: FullBoard}
}

// EmptyCells returns the free cells of a sub-board.
func (b *Board) EmptyCells(subBoard int) uint16 {
	return ^(b.Cells[PlayerX][subBoard] | b.Cells[PlayerO][subBoard]) & FullBoard
}

func (b *Board) IsSubBoardWon(subBoard int, player Player) bool {
	return WinTable[b.Cells[player][subBoard]]
}

// IsLosing reports whether the player who just moved has completed a line
// on the outer board, i.e. the side to move has lost.
func (b *Board) IsLosing() bool {
	return WinTable[b.Outer[b.Turn.Opponent()]]
}

// SubBoardsWon counts the sub-boards a player has won.
func (b *Board) SubBoardsWon(player Player) int {
	return bits.OnesCount16(b.Outer[player])
}

// Outcome decides a finished game. A completed outer line wins; once no
// move is left the player with more sub-boards wins.
func (b *Board) Outcome() Outcome {
	switch {
	case WinTable[b.Outer[PlayerX]]:
		return XWins
	case WinTable[b.Outer[PlayerO]]:
		return OWins
	case b.Playable != 0:
		return Ongoing
	}
	x, o := b.SubBoardsWon(PlayerX), b.SubBoardsWon(PlayerO)
	switch {
	case x > o:
		return XWins
	case o > x:
		return OWins
	default:
		return Draw
	}
}

// Validate checks a board received from outside the process. Boards
// produced by Play and Cancel are always valid.
func (b *Board) Validate() error {
	if b.Turn > PlayerO {
		return fmt.Errorf("turn %d: %w", b.Turn, ErrInvalidBoard)
	}
	masks := []uint16{b.Outer[PlayerX], b.Outer[PlayerO], b.Playable, b.Finished}
	masks = append(masks, b.Cells[PlayerX][:]...)
	masks = append(masks, b.Cells[PlayerO][:]...)
	for _, mask := range masks {
		if mask&^FullBoard != 0 {
			return fmt.Errorf("mask %#x exceeds nine bits: %w", mask, ErrInvalidBoard)
		}
	}
	for i := 0; i < NumCells; i++ {
		if b.Cells[PlayerX][i]&b.Cells[PlayerO][i] != 0 {
			return fmt.Errorf("sub-board %d has overlapping cells: %w", i, ErrInvalidBoard)
		}
	}
	if b.Outer[PlayerX]&b.Outer[PlayerO] != 0 {
		return fmt.Errorf("sub-board won by both players: %w", ErrInvalidBoard)
	}
	if b.Playable&b.Finished != 0 {
		return fmt.Errorf("finished sub-board is playable: %w", ErrInvalidBoard)
	}
	for i := 0; i < NumCells; i++ {
		bit := uint16(1) << i
		for _, player := range []Player{PlayerX, PlayerO} {
			if (b.Outer[player]&bit != 0) != b.IsSubBoardWon(i, player) {
				return fmt.Errorf("sub-board %d: line of %v and outer board disagree: %w", i, player, ErrInvalidBoard)
			}
		}
		won := (b.Outer[PlayerX]|b.Outer[PlayerO])&bit != 0
		full := b.EmptyCells(i) == 0
		if (b.Finished&bit != 0) != (won || full) {
			return fmt.Errorf("sub-board %d: finished flag disagrees with its cells: %w", i, ErrInvalidBoard)
		}
	}
	return nil
}

func (b *Board) IsOver() bool {
	return b.Outcome() != Ongoing
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	buf := make([]byte, 2)
	for player := range b.Cells {
		for _, pattern := range b.Cells[player] {
			binary.LittleEndian.PutUint16(buf, pattern)
			hasher.Write(buf)
		}
	}
	for _, field := range []uint16{b.Outer[PlayerX], b.Outer[PlayerO], b.Playable, b.Finished, uint16(b.Turn)} {
		binary.LittleEndian.PutUint16(buf, field)
		hasher.Write(buf)
	}
	return StateHash(hasher.Sum64())
}

// String renders the 9×9 grid, row 1 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < NumCells; row++ {
		if row > 0 && row%GridSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for col := 0; col < NumCells; col++ {
			if col > 0 && col%GridSize == 0 {
				sb.WriteString("| ")
			}
			m := MoveFromRowCol(row, col)
			bit := uint16(1) << m.Cell()
			switch {
			case b.Cells[PlayerX][m.SubBoard()]&bit != 0:
				sb.WriteByte('X')
			case b.Cells[PlayerO][m.SubBoard()]&bit != 0:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
