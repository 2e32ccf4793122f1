//go:build uttt_debug

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayPreconditions(t *testing.T) {
	t.Run("rejects a sub-board that is not playable", func(t *testing.T) {
		b := NewBoard()
		b.Play(0x44)
		require.PanicsWithValue(t, "move a1: sub-board 0 is not playable", func() { b.Play(0x00) })
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		b := NewBoard()
		b.Play(0x44)
		require.PanicsWithValue(t, "move e5: cell is occupied", func() { b.Play(0x44) })
	})

	t.Run("rejects a move off the board", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.Play(NewMove(NumCells, 0)) })
	})

	t.Run("accepts a routed move", func(t *testing.T) {
		b := NewBoard()
		b.Play(0x44)
		require.NotPanics(t, func() { b.Play(0x40) })
	})
}
