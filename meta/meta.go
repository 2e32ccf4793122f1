// meta/meta.go
package meta

import "uttt/game"

// DEPTH defines the default search depth of agents.
const DEPTH = 5

// MAX_TURNS bounds a game: every move fills one of the 81 cells.
const MAX_TURNS = game.MaxMoves

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 20

// EPSILON defines the exploration rate of self-play agents.
const EPSILON = 0.1
