// Package zobrist hashes Xiangqi positions with the committed key table.
//
// keys.go is generated; regenerate it with go generate after changing the
// generator.
package zobrist

//go:generate sh -c "go run ../../cmd/zobristgen go > keys.go.new && mv keys.go.new keys.go"

import (
	"errors"
	"fmt"
	"strings"
)

// StartFEN is the standard Xiangqi starting position, red to move.
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// Piece codes: negative for black, positive for red.
const (
	King   = 1
	Guard  = 2
	Bishop = 3
	Horse  = 4
	Rook   = 5
	Cannon = 6
	Pawn   = 7
)

var fenPieces = map[byte]int{
	'k': -King, 'a': -Guard, 'b': -Bishop, 'n': -Horse, 'r': -Rook, 'c': -Cannon, 'p': -Pawn,
	'K': King, 'A': Guard, 'B': Bishop, 'N': Horse, 'R': Rook, 'C': Cannon, 'P': Pawn,
}

// PieceIndex maps a piece code to its first index in Keys: black pieces
// use 0..6, red pieces 7..13. Empty squares return -1.
func PieceIndex(p int) int {
	switch {
	case p < 0:
		return -p - 1
	case p > 0:
		return p + 6
	}
	return -1
}

// Key returns the key for piece p on (row, col).
func Key(p, row, col int) uint64 {
	return Keys[PieceIndex(p)][row][col]
}

// HashFEN computes the Zobrist hash of a Xiangqi FEN. Only the board and
// side-to-move fields are read; SideKey is folded in unless red ("w") moves.
func HashFEN(fen string) (uint64, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return 0, errors.New("fen: missing side to move")
	}

	var hash uint64
	row, col := 0, 0
	for i := 0; i < len(fields[0]); i++ {
		ch := fields[0][i]
		switch {
		case ch == '/':
			row++
			col = 0
		case ch >= '1' && ch <= '9':
			col += int(ch - '0')
		default:
			p, ok := fenPieces[ch]
			if !ok {
				return 0, fmt.Errorf("fen: unknown piece %q", ch)
			}
			if row >= len(Keys[0]) || col >= len(Keys[0][0]) {
				return 0, fmt.Errorf("fen: piece %q off the board at row %d col %d", ch, row, col)
			}
			hash ^= Key(p, row, col)
			col++
		}
	}

	if fields[1] != "w" {
		hash ^= SideKey
	}
	return hash, nil
}
