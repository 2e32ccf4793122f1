package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"uttt/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type Update struct {
	Move  game.Move      `json:"move"`
	Board game.Board     `json:"board"`
	Hash  game.StateHash `json:"hash"`
}

// UpdateGetter returns the next played move and the board after it, or
// ok=false when no update is pending.
type UpdateGetter func() (update Update, ok bool)

type Engine interface {
	Init() (game.Board, UpdateGetter)
	Play(game.Move) error
}

type localEngine struct {
	mu       sync.Mutex
	board    game.Board
	updateCh chan Update
}

func NewLocalEngine() *localEngine {
	return &localEngine{board: game.NewBoard()}
}

// Init starts a new game and returns its board.
func (e *localEngine) Init() (game.Board, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.board = game.NewBoard()
	e.updateCh = make(chan Update, game.MaxMoves)
	updates := e.updateCh

	return e.board, func() (Update, bool) {
		select {
		case u, ok := <-updates:
			return u, ok
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

// Board returns a copy of the current board.
func (e *localEngine) Board() game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Play validates and applies a move for the side to move.
func (e *localEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board.IsOver() {
		return fmt.Errorf("move %v: %w", move, ErrGameOver)
	}
	if !lo.Contains(e.board.LegalMoves(), move) {
		return fmt.Errorf("move %v: %w", move, ErrIllegalMove)
	}

	e.board.Play(move)
	u := Update{Move: move, Board: e.board, Hash: e.board.Hash()}
	if e.updateCh != nil {
		e.updateCh <- u
	}

	if outcome := e.board.Outcome(); outcome != game.Ongoing {
		log.Info().Msgf("game over after %v, winner: %s", move, outcome)
		if e.updateCh != nil {
			close(e.updateCh)
			e.updateCh = nil
		}
	}
	return nil
}
