package game

import "math/bits"

// lineBonus rewards 0, 1, 2 or 3 cells on a line that is still open.
var lineBonus = [4]int16{0, 1, 4, 16}

// Lookup tables are built once during package initialisation and are
// read-only afterwards.
var (
	// WinTable reports whether a 9-bit pattern contains a line.
	WinTable = buildWinTable()

	// PositionScoreTable scores a pair of patterns packed as own<<9 | opp.
	PositionScoreTable = buildPositionScoreTable()
)

func buildWinTable() [1 << NumCells]bool {
	var table [1 << NumCells]bool
	for pattern := range table {
		for _, line := range Lines {
			if uint16(pattern)&line == line {
				table[pattern] = true
				break
			}
		}
	}
	return table
}

func buildPositionScoreTable() *[1 << (2 * NumCells)]int16 {
	table := new([1 << (2 * NumCells)]int16)
	for index := range table {
		own := uint16(index>>NumCells) & FullBoard
		opp := uint16(index) & FullBoard
		table[index] = scorePatterns(own, opp)
	}
	return table
}

func scorePatterns(own, opp uint16) int16 {
	var score int16
	for _, line := range Lines {
		ownCount := bits.OnesCount16(own & line)
		oppCount := bits.OnesCount16(opp & line)
		if oppCount == 0 {
			score += lineBonus[ownCount]
		}
		if ownCount == 0 {
			score -= lineBonus[oppCount]
		}
	}
	return score
}

// packPatterns builds a PositionScoreTable index.
func packPatterns(own, opp uint16) int {
	return int(own)<<NumCells | int(opp)
}
