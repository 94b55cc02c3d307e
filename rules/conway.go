package rules

// State is the value of a single cell.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

/*
Next applies Conway's Game of Life rules to a single cell.

A live cell with two or three live neighbors survives, a dead cell with exactly
three live neighbors is born, every other cell is dead in the next generation.
*/
func Next(state State, neighbors int) State {
	switch {
	case state == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case state == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// FromRune maps the pattern file alphabet onto cell states.
func FromRune(r rune) (State, bool) {
	switch r {
	case '#':
		return Alive, true
	case '_':
		return Dead, true
	}
	return Dead, false
}

// Rune is the inverse of FromRune.
func (s State) Rune() rune {
	if s == Alive {
		return '#'
	}
	return '_'
}
