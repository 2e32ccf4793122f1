package game

// Cells of a 3×3 grid are numbered row-major: bit index = row*3 + col.
// The same layout is used for the cells of a sub-board and for the
// sub-boards of the outer board.
const (
	GridSize  = 3
	NumCells  = GridSize * GridSize
	FullBoard = uint16(1<<NumCells - 1)

	// MaxMoves is the number of moves available on an empty board.
	MaxMoves = NumCells * NumCells
)

// Lines are the eight ways to get three in a row.
var Lines = [8]uint16{
	0b000000111, // rows
	0b000111000,
	0b111000000,
	0b001001001, // columns
	0b010010010,
	0b100100100,
	0b100010001, // diagonals
	0b001010100,
}

// SquareWeights favours the center sub-board, then corners, then edges.
var SquareWeights = [NumCells]int{3, 2, 3, 2, 4, 2, 3, 2, 3}

// OuterWeight scales the outer board score so that it dominates the
// sub-board scores.
const OuterWeight = 1000

type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

func (p Player) Opponent() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == PlayerX {
		return "X"
	}
	return "O"
}
