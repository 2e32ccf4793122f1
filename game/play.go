package game

import "fmt"

// Play applies a legal move for the side to move.
func (b *Board) Play(m Move) {
	subBoard, cell := m.SubBoard(), m.Cell()
	if debugChecks {
		b.checkPlayable(m)
	}
	player := b.Turn
	b.Cells[player][subBoard] ^= 1 << cell

	subBoardBit := uint16(1) << subBoard
	if b.IsSubBoardWon(subBoard, player) {
		b.Finished |= subBoardBit
		b.Outer[player] |= subBoardBit
	} else if b.Cells[PlayerX][subBoard]|b.Cells[PlayerO][subBoard] == FullBoard {
		b.Finished |= subBoardBit
	}

	// The cell played sends the opponent to the sub-board with the same
	// index, or anywhere open when that sub-board is finished.
	b.Playable = 1 << cell
	if b.Finished&b.Playable != 0 {
		b.Playable = ^b.Finished & FullBoard
	}

	b.Turn = player.Opponent()
}

// Cancel undoes Play(m). playable must be the Playable mask from before
// the move.
func (b *Board) Cancel(m Move, playable uint16) {
	subBoard, cell := m.SubBoard(), m.Cell()
	b.Turn = b.Turn.Opponent()
	b.Cells[b.Turn][subBoard] ^= 1 << cell

	subBoardBit := uint16(1) << subBoard
	b.Finished &^= subBoardBit
	b.Outer[b.Turn] &^= subBoardBit

	b.Playable = playable
}

func (b *Board) checkPlayable(m Move) {
	subBoard, cell := m.SubBoard(), m.Cell()
	if subBoard >= NumCells || cell >= NumCells {
		panic(fmt.Sprintf("move %#02x out of range", uint8(m)))
	}
	if b.Playable&(1<<subBoard) == 0 {
		panic(fmt.Sprintf("move %v: sub-board %d is not playable", m, subBoard))
	}
	if b.EmptyCells(subBoard)&(1<<cell) == 0 {
		panic(fmt.Sprintf("move %v: cell is occupied", m))
	}
}
