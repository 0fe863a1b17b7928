package game

// Exact values for decided positions, from the maximizing player's
// perspective. Heuristic scores stay well inside this range.
const (
	WinValue  = 100.0
	DrawValue = 0.0
	LossValue = -100.0
)

// Evaluate scores a position from role's perspective: positive favors role.
// Every variant returns the exact outcome for terminal states (WinValue,
// DrawValue, or LossValue) before any pattern logic runs.
type Evaluate func(s *State, role Mark) float64

// terminalValue resolves decided positions. The bool is false for positions
// still in play.
func terminalValue(s *State, role Mark) (float64, bool) {
	if !s.IsTerminal() {
		return 0, false
	}
	switch s.Winner() {
	case None:
		return DrawValue, true
	case role:
		return WinValue, true
	default:
		return LossValue, true
	}
}

// EvaluateZero scores every undecided position 0, so search strength comes
// from terminal lookahead alone. Baseline for benchmarking the others.
func EvaluateZero(s *State, role Mark) float64 {
	if value, decided := terminalValue(s, role); decided {
		return value
	}
	return 0
}

// EvaluateThreeLines counts three-in-a-rows: +1 for each owned by role, -1
// for each owned by the opponent. Each run is anchored at its starting cell
// per axis direction, so no run is counted twice.
//
// The window's far cell (start + 2*dir) is bounds-checked, meaning a
// three-in-a-row flush against the board edge still counts even when no
// fourth cell would fit.
func EvaluateThreeLines(s *State, role Mark) float64 {
	if value, decided := terminalValue(s, role); decided {
		return value
	}

	score := 0.0
	for c := 0; c < s.numCols; c++ {
		for r := 0; r < s.numRows; r++ {
			piece := s.grid[c][r]
			if piece == None {
				continue
			}
			for dir := 0; dir < len(colDirs); dir++ {
				if !s.inBounds(c+2*colDirs[dir], r+2*rowDirs[dir]) {
					continue
				}
				if s.grid[c+colDirs[dir]][r+rowDirs[dir]] == piece &&
					s.grid[c+2*colDirs[dir]][r+2*rowDirs[dir]] == piece {
					if piece == role {
						score++
					} else {
						score--
					}
				}
			}
		}
	}
	return score
}

// EvaluateWindows scores every in-bounds 4-cell window starting at an
// occupied cell. A window held by a single mark (its other cells empty)
// contributes that mark's piece count, signed by whether the mark belongs
// to role; windows containing both marks are dead and score 0.
func EvaluateWindows(s *State, role Mark) float64 {
	if value, decided := terminalValue(s, role); decided {
		return value
	}

	score := 0.0
	for c := 0; c < s.numCols; c++ {
		for r := 0; r < s.numRows; r++ {
			piece := s.grid[c][r]
			if piece == None {
				continue
			}
			for dir := 0; dir < len(colDirs); dir++ {
				if !s.inBounds(c+(connect-1)*colDirs[dir], r+(connect-1)*rowDirs[dir]) {
					continue
				}
				if window := s.windowCount(c, r, dir, piece); window > 0 {
					if piece == role {
						score += float64(window)
					} else {
						score -= float64(window)
					}
				}
			}
		}
	}
	return score
}

// windowCount returns how many cells of the 4-cell window starting at
// (col, row) along dir hold piece, or 0 if any cell holds the other mark.
// The caller guarantees the window is in bounds.
func (s *State) windowCount(col, row, dir int, piece Mark) int {
	count := 0
	for k := 0; k < connect; k++ {
		switch s.grid[col+k*colDirs[dir]][row+k*rowDirs[dir]] {
		case piece:
			count++
		case None:
		default:
			return 0
		}
	}
	return count
}
