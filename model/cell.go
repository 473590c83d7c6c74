package model

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// String returns a short name of the state.
func (c Cell) String() string {
	if c == Dead {
		return "dead"
	}
	return "alive"
}

// normalized folds any non-zero value to Alive so buffers only ever hold 0 or 1.
func (c Cell) normalized() Cell {
	if c != Dead {
		return Alive
	}
	return Dead
}
