// Package keygen builds the Zobrist key table for a 10x9 Xiangqi board and
// renders it as source code.
package keygen

const (
	Pieces = 14
	Rows   = 10
	Cols   = 9

	// DefaultSeed is the seed the committed table was generated with.
	DefaultSeed = 0
)

// Table holds one key per [piece][row][col] plus the side-to-move key.
type Table struct {
	Keys [Pieces][Rows][Cols]uint64
	Side uint64
}

// Generate draws the table from a Source seeded with seed. Keys are drawn
// piece by piece, row by row, column by column; Side is drawn last.
func Generate(seed uint64) Table {
	src := NewSource(seed)
	var t Table
	for p := 0; p < Pieces; p++ {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				t.Keys[p][r][c] = src.Uint64()
			}
		}
	}
	t.Side = src.Uint64()
	return t
}
