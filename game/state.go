package game

import (
	"errors"
	"fmt"
	"strings"
)

// Direction vectors for the four board axes (horizontal, rising diagonal,
// vertical, falling diagonal). Only one sense per axis is needed: the board
// is scanned exhaustively, so the reverse sense is covered by starting from
// the opposite end cell.
var (
	colDirs = [4]int{1, 1, 0, -1}
	rowDirs = [4]int{0, 1, 1, 1}
)

// connect is the line length that wins the game.
const connect = 4

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game is over")
	ErrGridMismatch     = errors.New("grid does not match declared dimensions")
)

// State is an immutable Connect Four position. Apply returns a new copy, so
// sibling subtrees in a search never alias each other's grids.
//
// The grid is column-major: grid[col][row] with [0][0] the bottom-left
// corner. Gravity keeps each column's occupied cells a contiguous run from
// the bottom.
type State struct {
	numCols int
	numRows int
	grid    [][]Mark
	turn    Mark
	winner  Mark
	over    bool
}

// NewState returns an empty numCols x numRows board with turn to move next.
func NewState(numCols, numRows int, turn Mark) *State {
	grid := make([][]Mark, numCols)
	for c := range grid {
		grid[c] = make([]Mark, numRows)
		for r := range grid[c] {
			grid[c][r] = None
		}
	}
	return &State{
		numCols: numCols,
		numRows: numRows,
		grid:    grid,
		turn:    turn,
	}
}

// NewStateFromGrid builds a State around an existing grid (column-major,
// bottom row first) and recomputes the winner and terminal caches. It fails
// with ErrGridMismatch when the grid disagrees with the declared dimensions.
func NewStateFromGrid(numCols, numRows int, grid [][]Mark, turn Mark) (*State, error) {
	if numCols <= 0 || numRows <= 0 || len(grid) != numCols {
		return nil, fmt.Errorf("%w: declared %dx%d, got %d columns",
			ErrGridMismatch, numCols, numRows, len(grid))
	}
	copied := make([][]Mark, numCols)
	for c, column := range grid {
		if len(column) != numRows {
			return nil, fmt.Errorf("%w: declared %dx%d, column %d has %d rows",
				ErrGridMismatch, numCols, numRows, c, len(column))
		}
		copied[c] = append([]Mark(nil), column...)
	}
	s := &State{
		numCols: numCols,
		numRows: numRows,
		grid:    copied,
		turn:    turn,
	}
	s.refreshOutcome()
	return s, nil
}

// ParseGrid converts display-ordered row strings (top row first, one
// character per cell) into the column-major grid expected by
// NewStateFromGrid. Meant for tests and fixtures.
func ParseGrid(rows ...string) ([][]Mark, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrGridMismatch)
	}
	numRows := len(rows)
	numCols := len(rows[0])
	grid := make([][]Mark, numCols)
	for c := range grid {
		grid[c] = make([]Mark, numRows)
	}
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrGridMismatch, i, len(row), numCols)
		}
		for c := 0; c < numCols; c++ {
			mark := Mark(row[c])
			switch mark {
			case None, X, O:
			default:
				return nil, fmt.Errorf("%w: unknown cell %q", ErrGridMismatch, row[c])
			}
			grid[c][numRows-1-i] = mark
		}
	}
	return grid, nil
}

func (s *State) NumCols() int { return s.numCols }

func (s *State) NumRows() int { return s.numRows }

// Turn names the mark placed by the next move.
func (s *State) Turn() Mark { return s.turn }

// Winner returns the mark holding a four-in-a-row, or None while the game is
// undecided or drawn.
func (s *State) Winner() Mark { return s.winner }

// IsTerminal reports whether a four-in-a-row exists or no column has room.
func (s *State) IsTerminal() bool { return s.over }

// Cell returns the mark at the given coordinates ([0][0] is bottom-left).
func (s *State) Cell(col, row int) Mark { return s.grid[col][row] }

func (s *State) inBounds(col, row int) bool {
	return col >= 0 && col < s.numCols && row >= 0 && row < s.numRows
}

// LegalMoves lists droppable columns in ascending order. It is empty once
// the game is over.
func (s *State) LegalMoves() []int {
	if s.over {
		return nil
	}
	moves := make([]int, 0, s.numCols)
	for c := 0; c < s.numCols; c++ {
		if s.grid[c][s.numRows-1] == None {
			moves = append(moves, c)
		}
	}
	return moves
}

// Apply drops the current turn's mark into col and returns the resulting
// position, leaving the receiver untouched. It fails with one of
// ErrGameOver, ErrColumnOutOfRange, or ErrColumnFull when the move is
// illegal.
func (s *State) Apply(col int) (*State, error) {
	if s.over {
		return nil, fmt.Errorf("cannot play column %d: %w", col, ErrGameOver)
	}
	if col < 0 || col >= s.numCols {
		return nil, fmt.Errorf("cannot play column %d: %w", col, ErrColumnOutOfRange)
	}
	row := s.firstEmptyRow(col)
	if row < 0 {
		return nil, fmt.Errorf("cannot play column %d: %w", col, ErrColumnFull)
	}

	next := s.Copy()
	next.grid[col][row] = s.turn
	next.turn = s.turn.Other()
	next.refreshOutcome()
	return next, nil
}

func (s *State) firstEmptyRow(col int) int {
	for r := 0; r < s.numRows; r++ {
		if s.grid[col][r] == None {
			return r
		}
	}
	return -1
}

// Copy returns an independent deep copy sharing no grid storage.
func (s *State) Copy() *State {
	grid := make([][]Mark, s.numCols)
	for c := range grid {
		grid[c] = append([]Mark(nil), s.grid[c]...)
	}
	clone := *s
	clone.grid = grid
	return &clone
}

// Equal compares board contents only: two states with the same piece layout
// are equal regardless of turn or outcome bookkeeping.
func (s *State) Equal(other *State) bool {
	if other == nil || s.numCols != other.numCols || s.numRows != other.numRows {
		return false
	}
	for c := 0; c < s.numCols; c++ {
		for r := 0; r < s.numRows; r++ {
			if s.grid[c][r] != other.grid[c][r] {
				return false
			}
		}
	}
	return true
}

func (s *State) refreshOutcome() {
	s.winner = s.fourInARow()
	s.over = s.winner != None || s.boardFull()
}

func (s *State) boardFull() bool {
	for c := 0; c < s.numCols; c++ {
		if s.grid[c][s.numRows-1] == None {
			return false
		}
	}
	return true
}

// fourInARow returns the mark holding a four-in-a-row, or None.
func (s *State) fourInARow() Mark {
	for c := 0; c < s.numCols; c++ {
		for r := 0; r < s.numRows; r++ {
			piece := s.grid[c][r]
			if piece == None {
				continue
			}
			for dir := 0; dir < len(colDirs); dir++ {
				if s.lineFrom(c, r, dir) == connect {
					return piece
				}
			}
		}
	}
	return None
}

// lineFrom counts how many cells of the window starting at (col, row) along
// dir hold the starting mark, stopping at the first mismatch. It returns 0
// when the window's far end is out of bounds.
func (s *State) lineFrom(col, row, dir int) int {
	piece := s.grid[col][row]
	if !s.inBounds(col+(connect-1)*colDirs[dir], row+(connect-1)*rowDirs[dir]) {
		return 0
	}
	count := 0
	for k := 0; k < connect; k++ {
		if s.grid[col+k*colDirs[dir]][row+k*rowDirs[dir]] != piece {
			break
		}
		count++
	}
	return count
}

// String renders the board as a bordered grid, top row first:
//
//	+---------------+
//	| . . . . . . . |
//	| . x o . . . . |
//	+---------------+
func (s *State) String() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", s.numCols*2+1) + "+\n"
	b.WriteString(border)
	for r := s.numRows - 1; r >= 0; r-- {
		b.WriteString("| ")
		for c := 0; c < s.numCols; c++ {
			b.WriteByte(byte(s.grid[c][r]))
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
