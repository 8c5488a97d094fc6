package pairs

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// StartupDimensions reads an optional "rows cols" line from the player.
// An empty line takes the defaults silently; unparseable input or
// dimensions that could never build a board print a diagnostic and fall
// back to the defaults. It never fails.
func StartupDimensions(reader *bufio.Reader, out io.Writer, defaultRows, defaultCols int) (int, int) {
	SendText(out, dimensionsPromptText, defaultRows, defaultCols)

	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultRows, defaultCols
	}

	rows, cols, ok := parseCoords(line)
	if !ok {
		SendText(out, invalidDimensionsInputText, defaultRows, defaultCols)
		return defaultRows, defaultCols
	}
	if rows <= 0 || cols <= 0 || (rows*cols)%2 != 0 {
		SendText(out, invalidDimensionsText, defaultRows, defaultCols)
		return defaultRows, defaultCols
	}

	return rows, cols
}

// parseCoords extracts exactly two whitespace-separated integers from a
// line of input
func parseCoords(line string) (int, int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}

	first, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	second, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}

	return first, second, true
}
