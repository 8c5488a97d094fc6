package pairs

import (
	"fmt"
	"io"
	"strings"
)

const (
	introText = "Memory Puzzle (no timers, press Enter when asked)\n" +
		"Board: %dx%d\n" +
		"Choose cards by entering row and column numbers separated by space.\n"
	startPromptText      = "Press Enter to start..."
	movesText            = "Moves: %d\n"
	firstCardPromptText  = "Select first card (row col): "
	secondCardPromptText = "Select second card (row col): "
	invalidSelectionText = "Invalid input. Use: <row> <col>  (e.g. 2 3)\n"
	alreadyMatchedText   = "That card is already matched. Choose another.\n"
	sameCardText         = "You selected the same card twice. Try again.\n"
	secondMatchedText    = "Second card already matched. Try again.\n"
	matchText            = "MATCH! (%s)\n"
	mismatchText         = "Not a match.\n"
	continuePromptText   = "Press Enter to continue and hide the two cards..."
	congratulationsText  = "CONGRATULATIONS! All pairs matched.\nTotal moves: %d\n"

	dimensionsPromptText       = "Enter board size (rows cols) or press Enter for default %d %d:\n> "
	invalidDimensionsInputText = "Invalid input. Using default %dx%d.\n"
	invalidDimensionsText      = "Invalid board dimensions. Using default %dx%d.\n"
)

// SendText writes formatted text to the player
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// buildBoardText renders the board with 1-based row and column indices.
// Hidden cards show as *; revealed and matched cards show their value.
func buildBoardText(b *Board) string {
	var sb strings.Builder

	sb.WriteString("\n    ")
	for c := 0; c < b.Cols(); c++ {
		fmt.Fprintf(&sb, "%3d ", c+1)
	}
	sb.WriteByte('\n')

	border := "   +" + strings.Repeat("-", b.Cols()*4) + "+\n"
	sb.WriteString(border)

	for r := 0; r < b.Rows(); r++ {
		fmt.Fprintf(&sb, "%2d |", r+1)
		for c := 0; c < b.Cols(); c++ {
			card, _ := b.At(r, c)
			fmt.Fprintf(&sb, " %s |", card)
		}
		sb.WriteByte('\n')
		sb.WriteString(border)
	}
	sb.WriteByte('\n')

	return sb.String()
}
