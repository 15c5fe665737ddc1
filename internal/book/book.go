// Package book reads and writes Xiangqi opening books.
//
// A compiled book is a flat sequence of 16-byte records, one per candidate
// move. There is no header; the record count is the file size divided by
// RecordSize.
package book

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	Rows = 10
	Cols = 9

	// RecordSize is the encoded size of one Entry.
	RecordSize = 16
)

var (
	// ErrSourceMissing is returned by Compile when the JSON book does not exist.
	ErrSourceMissing = errors.New("book source not found")
	// ErrTruncated means the input ended inside a record.
	ErrTruncated = errors.New("truncated book record")
)

// Coord is a (row, column) board coordinate.
type Coord struct {
	Row int
	Col int
}

// Square flattens the coordinate into a square index (row*9 + col).
// Coordinates are not range checked.
func (c Coord) Square() int32 {
	return SquareIndex(c.Row, c.Col)
}

func SquareIndex(row, col int) int32 {
	return int32(row*Cols + col)
}

// Move is a from/to pair of square indices.
type Move struct {
	From int32
	To   int32
}

// MoveFromCoords builds a move out of two board coordinates.
func MoveFromCoords(from, to Coord) Move {
	return Move{From: from.Square(), To: to.Square()}
}

func (m Move) String() string {
	return fmt.Sprintf("%d%d-%d%d", m.From/Cols, m.From%Cols, m.To/Cols, m.To%Cols)
}

// Entry is one book record: a candidate move for a position hash.
type Entry struct {
	Hash uint64
	Move Move
}

// PutRecord encodes e into the first RecordSize bytes of buf.
// All fields are little-endian.
func PutRecord(buf []byte, e Entry) {
	_ = buf[RecordSize-1]
	binary.LittleEndian.PutUint64(buf[0:8], e.Hash)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(e.Move.From))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(e.Move.To))
}

// AppendRecord appends the encoding of e to buf.
func AppendRecord(buf []byte, e Entry) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, e.Hash)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Move.From))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Move.To))
	return buf
}

// DecodeRecord decodes a single record from buf.
func DecodeRecord(buf []byte) (Entry, error) {
	if len(buf) < RecordSize {
		return Entry{}, ErrTruncated
	}
	return Entry{
		Hash: binary.LittleEndian.Uint64(buf[0:8]),
		Move: Move{
			From: int32(binary.LittleEndian.Uint32(buf[8:12])),
			To:   int32(binary.LittleEndian.Uint32(buf[12:16])),
		},
	}, nil
}
