package automaton

// States maps a cell type onto the automaton's two states.
type States[T comparable] struct {
	Dead  T
	Alive T
}

func (s States[T]) validate() error {
	if s.Dead == s.Alive {
		return ErrInvalidParameter
	}
	return nil
}

// Tile enumerates map tile codes.
type Tile uint8

const (
	TileNone Tile = iota
	TileWall
)

// Rune returns the character used for ASCII dumps.
func (t Tile) Rune() rune {
	if t == TileWall {
		return '#'
	}
	return '.'
}

// BoolStates treats true as alive.
var BoolStates = States[bool]{Dead: false, Alive: true}

// TileStates treats walls as alive and empty tiles as dead.
var TileStates = States[Tile]{Dead: TileNone, Alive: TileWall}
