package pairs

import (
	"errors"
	"io"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
)

// Stage represents the phases of a single turn
type Stage int

const (
	awaitingFirstSelection Stage = iota
	awaitingSecondSelection
	resolving
	won
)

var (
	ErrNilGame        = errors.New("game is nil")
	ErrGameOver       = errors.New("game is already over")
	ErrWrongStage     = errors.New("selection out of turn")
	ErrAlreadyMatched = errors.New("card is already matched")
	ErrSameCellTwice  = errors.New("same card selected twice")
)

// NewID constructs a game session ID
func NewID() string {
	return uuid.NewV4().String()
}

// conn represents a connection to the player in the real world
type conn struct {
	In  io.Reader
	Out io.Writer
}

type cell struct {
	row, col int
}

// Game drives a single memory-pairs session for one player. A turn is
// two selections: the first reveals a card, the second reveals another
// and resolves the comparison. Rejected selections never count as moves.
type Game struct {
	id     string
	board  *Board
	moves  int
	stage  Stage
	first  cell
	second cell
	conn   *conn
	log    zerolog.Logger
}

// GameOpts holds the inputs to NewGame. Board, when supplied, takes the
// place of a freshly built Rows x Cols board. In and Out default to the
// process's stdin and stdout; Logger defaults to a no-op logger.
type GameOpts struct {
	Rows   int
	Cols   int
	Board  *Board
	Rand   *rand.Rand
	In     io.Reader
	Out    io.Writer
	Logger *zerolog.Logger
}

// NewGame constructs a new game
func NewGame(opts GameOpts) (*Game, error) {
	board := opts.Board
	if board == nil {
		b, err := NewBoard(BoardOpts{Rows: opts.Rows, Cols: opts.Cols, Rand: opts.Rand})
		if err != nil {
			return nil, err
		}
		board = b
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	id := NewID()

	return &Game{
		id:    id,
		board: board,
		stage: awaitingFirstSelection,
		conn:  &conn{In: in, Out: out},
		log:   logger.With().Str("game_id", id).Logger(),
	}, nil
}

// ID returns the game's session ID
func (g *Game) ID() string {
	return g.id
}

// Board returns the game's board
func (g *Game) Board() *Board {
	return g.board
}

// Moves returns the number of completed two-card turns so far
func (g *Game) Moves() int {
	return g.moves
}

// Won reports whether every pair on the board has been matched
func (g *Game) Won() bool {
	return g.board.AllMatched()
}

// SelectFirst reveals the first card of a turn. Selecting an
// already-matched card is rejected and leaves the turn where it was.
func (g *Game) SelectFirst(row, col int) error {
	if g == nil {
		return ErrNilGame
	}
	if g.stage == won {
		return ErrGameOver
	}
	if g.stage != awaitingFirstSelection {
		return ErrWrongStage
	}

	card, err := g.board.At(row, col)
	if err != nil {
		return err
	}
	if card.Matched() {
		return ErrAlreadyMatched
	}

	card.Reveal()
	g.first = cell{row, col}
	g.stage = awaitingSecondSelection

	g.log.Debug().Int("row", row).Int("col", col).Msg("first card revealed")
	return nil
}

// SelectSecond reveals the second card of a turn and resolves the
// comparison, reporting whether the two cards matched. A mismatch leaves
// both cards face up until ConcealMismatch is called, so the player gets
// a chance to see them. Selecting the first card again, or a matched
// card, hides the first card and restarts the turn without counting a
// move. An out-of-range selection changes nothing.
func (g *Game) SelectSecond(row, col int) (bool, error) {
	if g == nil {
		return false, ErrNilGame
	}
	if g.stage != awaitingSecondSelection {
		return false, ErrWrongStage
	}

	if row == g.first.row && col == g.first.col {
		g.abortTurn()
		return false, ErrSameCellTwice
	}

	card, err := g.board.At(row, col)
	if err != nil {
		return false, err
	}
	if card.Matched() {
		g.abortTurn()
		return false, ErrAlreadyMatched
	}

	card.Reveal()
	g.second = cell{row, col}

	// The turn reached the comparison, so it counts whatever the outcome.
	g.moves++

	firstCard, err := g.board.At(g.first.row, g.first.col)
	if err != nil {
		return false, err
	}

	if firstCard.Value() == card.Value() {
		firstCard.SetMatched()
		card.SetMatched()
		if g.board.AllMatched() {
			g.stage = won
		} else {
			g.stage = awaitingFirstSelection
		}
		g.log.Debug().
			Int("moves", g.moves).
			Str("value", string(card.Value())).
			Msg("pair matched")
		return true, nil
	}

	g.stage = resolving
	g.log.Debug().Int("moves", g.moves).Msg("mismatch")
	return false, nil
}

// ConcealMismatch hides both cards of a mismatched turn and readies the
// game for the next one.
func (g *Game) ConcealMismatch() error {
	if g == nil {
		return ErrNilGame
	}
	if g.stage != resolving {
		return ErrWrongStage
	}

	if err := g.board.HideAt(g.first.row, g.first.col); err != nil {
		return err
	}
	if err := g.board.HideAt(g.second.row, g.second.col); err != nil {
		return err
	}

	g.stage = awaitingFirstSelection
	return nil
}

// abortTurn rewinds a half-played turn after a rejected second selection
func (g *Game) abortTurn() {
	g.board.HideAt(g.first.row, g.first.col)
	g.stage = awaitingFirstSelection
}
