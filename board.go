package pairs

import (
	"errors"
	"math/rand"

	"github.com/natmcc/pairs/deck"
)

var (
	ErrInvalidDimensions = errors.New("rows and cols must both be positive")
	ErrOddCellCount      = errors.New("board must have an even number of cells")
	ErrWrongDeckSize     = errors.New("supplied cards do not fill the board")
	ErrCellOutOfRange    = errors.New("cell out of range")
)

// BoardOpts holds the inputs to NewBoard. Cards, when supplied, is laid
// out row-major in place of a freshly shuffled deck. Rand drives the
// shuffle; nil means a time-seeded generator.
type BoardOpts struct {
	Rows  int
	Cols  int
	Cards []deck.Card
	Rand  *rand.Rand
}

// Board is a rows x cols grid of cards, stored row-major.
type Board struct {
	rows  int
	cols  int
	cells []deck.Card
}

// NewBoard constructs a board whose cells hold a shuffled deck of paired
// values, every card face down.
func NewBoard(opts BoardOpts) (*Board, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	size := opts.Rows * opts.Cols
	if size%2 != 0 {
		return nil, ErrOddCellCount
	}

	cells := opts.Cards
	if cells == nil {
		cells = deck.New(size/2, opts.Rand)
	}
	if len(cells) != size {
		return nil, ErrWrongDeckSize
	}

	return &Board{rows: opts.Rows, cols: opts.Cols, cells: cells}, nil
}

// Rows returns the number of rows on the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns on the board
func (b *Board) Cols() int {
	return b.cols
}

// Size returns the total number of cells on the board
func (b *Board) Size() int {
	return b.rows * b.cols
}

// At returns the card at (row, col), 0-indexed
func (b *Board) At(row, col int) (*deck.Card, error) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil, ErrCellOutOfRange
	}
	return &b.cells[row*b.cols+col], nil
}

// RevealAt turns the card at (row, col) face up
func (b *Board) RevealAt(row, col int) error {
	c, err := b.At(row, col)
	if err != nil {
		return err
	}
	c.Reveal()
	return nil
}

// HideAt turns the card at (row, col) face down
func (b *Board) HideAt(row, col int) error {
	c, err := b.At(row, col)
	if err != nil {
		return err
	}
	c.Hide()
	return nil
}

// MatchAt locks the card at (row, col) as part of a confirmed pair
func (b *Board) MatchAt(row, col int) error {
	c, err := b.At(row, col)
	if err != nil {
		return err
	}
	c.SetMatched()
	return nil
}

// AllMatched reports whether every card on the board has been matched
func (b *Board) AllMatched() bool {
	for i := range b.cells {
		if !b.cells[i].Matched() {
			return false
		}
	}
	return true
}
