package pairs

import (
	"strings"
	"testing"

	utils "github.com/natmcc/pairs/internal"
)

func TestBuildBoardText(t *testing.T) {
	t.Run("face-down 2x2 board", func(t *testing.T) {
		b := boardWithValues(t, 2, 2, "AABB")

		want := strings.Join([]string{
			"",
			"      1   2 ",
			"   +--------+",
			" 1 | * | * |",
			"   +--------+",
			" 2 | * | * |",
			"   +--------+",
			"",
		}, "\n") + "\n"

		utils.AssertEqual(t, buildBoardText(b), want)
	})

	t.Run("revealed and matched cards show their values", func(t *testing.T) {
		b := boardWithValues(t, 2, 2, "AABB")
		b.RevealAt(0, 0)
		b.MatchAt(1, 1)

		want := strings.Join([]string{
			"",
			"      1   2 ",
			"   +--------+",
			" 1 | A | * |",
			"   +--------+",
			" 2 | * | B |",
			"   +--------+",
			"",
		}, "\n") + "\n"

		utils.AssertEqual(t, buildBoardText(b), want)
	})

	t.Run("wider boards pad double-digit row indices", func(t *testing.T) {
		b, err := NewBoard(BoardOpts{Rows: 10, Cols: 2})
		utils.AssertNoError(t, err)

		got := buildBoardText(b)
		utils.AssertTrue(t, strings.Contains(got, "10 | * | * |"))
		utils.AssertTrue(t, strings.Contains(got, " 9 | * | * |"))
	})
}
