package searcher

import "math"

// MaxDepth is the default search depth in plies.
const MaxDepth = 5

// DepthLimit bounds WithDepth so that win scores stay far from overflow.
const DepthLimit = 16

// WinScore is the score of a decided game one ply from the root of a
// depth-1 search. It is scaled by the remaining depth and exceeds any
// heuristic score.
const WinScore = 1_000_000

const Infinity = math.MaxInt32
