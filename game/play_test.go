package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("center move routes to the center sub-board", func(t *testing.T) {
		b := NewBoard()
		b.Play(0x44)

		require.Equal(t, uint16(1<<4), b.Playable)
		require.Equal(t, uint16(1<<4), b.Cells[PlayerX][4])
		require.Equal(t, PlayerO, b.Turn)
		require.Zero(t, b.Finished)
	})

	t.Run("completing a line wins the sub-board", func(t *testing.T) {
		b := NewBoard()
		b.Cells[PlayerX][2] = 0b001010000 // cells 4 and 6
		b.Playable = 1 << 2
		b.Play(NewMove(2, 2))

		require.Equal(t, uint16(1<<2), b.Finished)
		require.Equal(t, uint16(1<<2), b.Outer[PlayerX])
		require.Zero(t, b.Outer[PlayerO])
		require.True(t, b.IsSubBoardWon(2, PlayerX))
	})

	t.Run("filling a sub-board without a line draws it", func(t *testing.T) {
		b := NewBoard()
		b.Cells[PlayerX][0] = 0b010001101 // cells 0, 2, 3, 7
		b.Cells[PlayerO][0] = 0b001110010 // cells 1, 4, 5, 6
		b.Playable = 1 << 0
		b.Play(NewMove(0, 8))

		require.Equal(t, uint16(1<<0), b.Finished)
		require.Zero(t, b.Outer[PlayerX])
		require.Zero(t, b.Outer[PlayerO])
		require.Equal(t, uint16(1<<8), b.Playable)
	})

	t.Run("routing to a finished sub-board opens every unfinished one", func(t *testing.T) {
		b := NewBoard()
		b.Cells[PlayerO][4] = 0b000000111
		b.Outer[PlayerO] = 1 << 4
		b.Finished = 1 << 4
		b.Playable = 1 << 0
		b.Play(NewMove(0, 4))

		require.Equal(t, FullBoard&^(1<<4), b.Playable)
	})

	t.Run("winning the routed sub-board itself triggers the fallback", func(t *testing.T) {
		b := NewBoard()
		b.Cells[PlayerX][0] = 0b000000110 // cells 1 and 2
		b.Playable = 1 << 0
		b.Play(NewMove(0, 0))

		require.Equal(t, uint16(1), b.Finished)
		require.Equal(t, FullBoard&^1, b.Playable)
	})

	t.Run("invariants hold along random games", func(t *testing.T) {
		for _, b := range randomBoards(3, 30) {
			requireInvariants(t, b)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("restores every field for every legal move", func(t *testing.T) {
		var list MoveList
		for _, b := range randomBoards(11, 20) {
			if b.IsLosing() {
				continue
			}
			b.Moves(&list)
			for _, m := range list.Slice() {
				before := b
				previous := b.Playable

				b.Play(m)
				requireInvariants(t, b)
				b.Cancel(m, previous)

				require.Equal(t, before, b, "move %v", m)
			}
		}
	})

	t.Run("undoes a sub-board win", func(t *testing.T) {
		b := NewBoard()
		b.Cells[PlayerX][0] = 0b000000110
		b.Playable = 1 << 0
		before := b

		b.Play(NewMove(0, 0))
		b.Cancel(NewMove(0, 0), before.Playable)

		require.Equal(t, before, b)
	})

	t.Run("undoes a sequence in reverse order", func(t *testing.T) {
		b := NewBoard()
		start := b
		moves := []Move{0x44, 0x40, 0x04, 0x48, 0x84}
		snapshots := make([]uint16, len(moves))
		for i, m := range moves {
			snapshots[i] = b.Playable
			b.Play(m)
		}
		for i := len(moves) - 1; i >= 0; i-- {
			b.Cancel(moves[i], snapshots[i])
		}
		require.Equal(t, start, b)
	})
}
