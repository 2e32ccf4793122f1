package game

// Evaluate scores a position from the point of view of the side to move.
// Won outer-board lines are not detected here; callers check IsLosing first.
func (b *Board) Evaluate() int {
	own, opp := b.Turn, b.Turn.Opponent()
	score := int(PositionScoreTable[packPatterns(b.Outer[own], b.Outer[opp])]) * OuterWeight
	for i := 0; i < NumCells; i++ {
		if b.Finished&(1<<i) != 0 {
			continue
		}
		score += int(PositionScoreTable[packPatterns(b.Cells[own][i], b.Cells[opp][i])]) * SquareWeights[i]
	}
	return score
}
