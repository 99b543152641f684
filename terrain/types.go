package terrain

import (
	"fmt"
)

// GridLocation identifies a single grid cell by its row and column.
// It is a pure value type: comparable, hashable, and carrying no payload,
// so it can serve both as a grid address and as a map key or queue element.
type GridLocation struct {
	Row, Col int
}

// InBounds reports whether the location lies within [0,rows) × [0,cols).
// Complexity: O(1).
func (l GridLocation) InBounds(rows, cols int) bool {
	return l.Row >= 0 && l.Row < rows && l.Col >= 0 && l.Col < cols
}

// Index maps the location to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (l GridLocation) Index(cols int) int {
	return l.Row*cols + l.Col
}

// Locate converts a row-major index back to a GridLocation.
// Complexity: O(1).
func Locate(idx, cols int) GridLocation {
	return GridLocation{Row: idx / cols, Col: idx % cols}
}

// String renders the location as a coordinate pair, e.g. "(2, 5)".
func (l GridLocation) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Col)
}
