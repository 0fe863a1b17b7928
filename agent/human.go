package agent

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"connectfour/game"
)

// Human reads column numbers from in, re-prompting until the input parses
// as an integer naming a legal move. Bad input is recovered locally and
// never propagated.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (a *Human) Initialize(role game.Mark) {}

func (a *Human) Play(state *game.State) (int, error) {
	fmt.Fprint(a.out, state)
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("no legal moves")
	}

	for {
		fmt.Fprintf(a.out, "Enter a column number in the range [0,%d]: ", state.NumCols()-1)
		if !a.scanner.Scan() {
			if err := a.scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading input: %w", err)
			}
			return 0, fmt.Errorf("reading input: %w", io.EOF)
		}

		col, err := strconv.Atoi(strings.TrimSpace(a.scanner.Text()))
		if err != nil {
			fmt.Fprintln(a.out, "Unable to parse input.")
			continue
		}
		if !slices.Contains(moves, col) {
			fmt.Fprintln(a.out, "Selected column is not valid.")
			continue
		}
		return col, nil
	}
}
