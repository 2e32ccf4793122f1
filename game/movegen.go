package game

import "math/bits"

// MoveList is a fixed-capacity move buffer. The zero value is empty and
// ready to use; generating into it never allocates.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

func (l *MoveList) Reset() {
	l.n = 0
}

func (l *MoveList) Len() int {
	return l.n
}

func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice views the generated moves. It aliases the buffer and is only valid
// until the next generation into the same list.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

func (l *MoveList) push(m Move) {
	if l.n == MaxMoves {
		panic("move list overflow")
	}
	l.moves[l.n] = m
	l.n++
}

// Moves writes every legal move into list, by ascending sub-board and then
// ascending cell.
func (b *Board) Moves(list *MoveList) {
	list.Reset()
	boards := b.Playable
	for boards != 0 {
		subBoard := bits.TrailingZeros16(boards)
		cells := b.EmptyCells(subBoard)
		for cells != 0 {
			cell := bits.TrailingZeros16(cells)
			list.push(NewMove(subBoard, cell))
			cells &= cells - 1
		}
		boards &= boards - 1
	}
}

// LegalMoves is the allocating form of Moves for callers outside the
// search.
func (b *Board) LegalMoves() []Move {
	var list MoveList
	b.Moves(&list)
	return append([]Move(nil), list.Slice()...)
}
