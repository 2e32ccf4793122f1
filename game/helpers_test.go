package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// randomBoards plays random games and collects every position reached,
// stopping each game at its end.
func randomBoards(seed uint64, games int) []Board {
	r := rand.New(rand.NewSource(seed))
	var boards []Board
	var list MoveList
	for g := 0; g < games; g++ {
		b := NewBoard()
		for {
			boards = append(boards, b)
			if b.IsLosing() {
				break
			}
			b.Moves(&list)
			if list.Len() == 0 {
				break
			}
			b.Play(list.At(r.Intn(list.Len())))
		}
	}
	return boards
}

func requireInvariants(t *testing.T, b Board) {
	t.Helper()
	require.NoError(t, b.Validate(), "%s", b.String())
	for i := 0; i < NumCells; i++ {
		bit := uint16(1) << i
		x, o := b.Cells[PlayerX][i], b.Cells[PlayerO][i]
		require.Zero(t, x&o, "sub-board %d is occupied twice\n%s", i, b.String())

		wonX, wonO := b.Outer[PlayerX]&bit != 0, b.Outer[PlayerO]&bit != 0
		require.False(t, wonX && wonO, "sub-board %d won by both", i)
		if wonX {
			require.True(t, WinTable[x])
		}
		if wonO {
			require.True(t, WinTable[o])
		}
		drawn := !wonX && !wonO && x|o == FullBoard
		require.Equal(t, wonX || wonO || drawn, b.Finished&bit != 0, "finished bit of sub-board %d\n%s", i, b.String())
	}
	require.Zero(t, b.Playable&b.Finished)
}
