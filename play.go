package pairs

import (
	"bufio"
	"errors"
	"io"
)

// Play runs the interactive game loop until every pair is matched. It
// returns an error only when the input stream fails or runs dry; bad
// input from a live player is re-prompted indefinitely.
func (g *Game) Play() error {
	if g == nil {
		return ErrNilGame
	}

	reader := bufio.NewReader(g.conn.In)

	SendText(g.conn.Out, introText, g.board.Rows(), g.board.Cols())
	g.waitForEnter(reader, startPromptText)

	g.log.Info().
		Int("rows", g.board.Rows()).
		Int("cols", g.board.Cols()).
		Msg("game started")

	for !g.board.AllMatched() {
		SendText(g.conn.Out, buildBoardText(g.board))
		SendText(g.conn.Out, movesText, g.moves)

		r1, c1, err := g.readSelection(reader, firstCardPromptText)
		if err != nil {
			return err
		}
		if err := g.SelectFirst(r1, c1); err != nil {
			SendText(g.conn.Out, alreadyMatchedText)
			continue
		}
		SendText(g.conn.Out, buildBoardText(g.board))

		r2, c2, err := g.readSelection(reader, secondCardPromptText)
		if err != nil {
			return err
		}

		matched, err := g.SelectSecond(r2, c2)
		if errors.Is(err, ErrSameCellTwice) {
			SendText(g.conn.Out, sameCardText)
			continue
		}
		if errors.Is(err, ErrAlreadyMatched) {
			SendText(g.conn.Out, secondMatchedText)
			continue
		}
		if err != nil {
			return err
		}

		SendText(g.conn.Out, buildBoardText(g.board))

		if matched {
			card, _ := g.board.At(r2, c2)
			SendText(g.conn.Out, matchText, string(card.Value()))
			continue
		}

		SendText(g.conn.Out, mismatchText)
		g.waitForEnter(reader, continuePromptText)
		if err := g.ConcealMismatch(); err != nil {
			return err
		}
	}

	SendText(g.conn.Out, buildBoardText(g.board))
	SendText(g.conn.Out, congratulationsText, g.moves)
	g.log.Info().Int("moves", g.moves).Msg("all pairs matched")

	return nil
}

// readSelection prompts until the player supplies two integers naming an
// in-bounds cell, returned 0-indexed. Anything else prints a diagnostic
// and re-prompts. The zero coordinates and an error come back when the
// input stream ends first.
func (g *Game) readSelection(reader *bufio.Reader, prompt string) (int, int, error) {
	for {
		SendText(g.conn.Out, prompt)

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, 0, err
		}

		row, col, ok := parseCoords(line)
		if ok {
			if _, atErr := g.board.At(row-1, col-1); atErr == nil {
				return row - 1, col - 1, nil
			}
		}

		if err == io.EOF {
			return 0, 0, io.EOF
		}

		SendText(g.conn.Out, invalidSelectionText)
	}
}

// waitForEnter blocks until the player submits a line
func (g *Game) waitForEnter(reader *bufio.Reader, prompt string) {
	SendText(g.conn.Out, prompt)
	reader.ReadString('\n')
}
