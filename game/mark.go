package game

// Mark is one of the two player symbols occupying a cell, or None for an
// empty cell. None also serves as the winner sentinel while a game is
// undecided or drawn.
type Mark byte

const (
	None Mark = '.'
	X    Mark = 'x'
	O    Mark = 'o'
)

// Other returns the opposing mark. Calling it on None is a programmer error.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		panic("no opponent for empty mark")
	}
}

func (m Mark) String() string {
	return string(rune(m))
}
