package searcher

import "uttt/game"

// negamax scores b from the side to move at the given ply. Move scores
// are from the point of view of the player choosing among them, so a move
// that completes an outer line is positive and leaf evaluations, taken
// from the opponent's point of view, are negated.
func (s *Searcher) negamax(b *game.Board, depth int, alpha, beta int) (game.Move, int, bool) {
	s.metrics.AddNode()
	list := &s.lists[depth]
	b.Moves(list)
	remaining := s.depth - depth

	if list.Len() == 0 {
		// Game over by exhaustion: more sub-boards won wins. Scores are from
		// the side to move, so the player who made the last move is behind
		// when this is positive.
		own, opp := b.SubBoardsWon(b.Turn), b.SubBoardsWon(b.Turn.Opponent())
		switch {
		case own > opp:
			return game.NoMove, WinScore * remaining, false
		case own < opp:
			return game.NoMove, -WinScore * remaining, false
		default:
			return game.NoMove, 0, false
		}
	}

	bestMove, bestScore := game.NoMove, -Infinity
	for i := 0; i < list.Len(); i++ {
		move := list.At(i)
		playable := b.Playable

		b.Play(move)
		var score int
		switch {
		case b.IsLosing():
			score = WinScore * remaining
		case depth+1 == s.depth:
			s.metrics.AddLeaf()
			score = -b.Evaluate()
		default:
			_, childScore, _ := s.negamax(b, depth+1, -beta, -alpha)
			score = -childScore
		}
		b.Cancel(move, playable)

		if score > bestScore {
			bestMove, bestScore = move, score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha > beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestMove, bestScore, true
}
