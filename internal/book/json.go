package book

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ParseJSON decodes a JSON opening book of the form
//
//	{"<decimal hash>": [[[r1, c1], [r2, c2]], ...], ...}
//
// Entries are returned in document order: keys as they appear in the file,
// then each key's moves in list order.
func ParseJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parse book json: invalid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("parse book json: top level is not an object")
	}

	// A repeated key keeps its first position but takes its last move list,
	// the same as decoding into a dictionary.
	type position struct {
		hash  uint64
		moves []Move
	}
	var (
		order []string
		seen  = make(map[string]*position)
		err   error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		hash, perr := strconv.ParseUint(key.String(), 10, 64)
		if perr != nil {
			err = fmt.Errorf("parse book json: hash %q: %w", key.String(), perr)
			return false
		}
		if !value.IsArray() {
			err = fmt.Errorf("parse book json: hash %d: moves are not a list", hash)
			return false
		}
		moves := make([]Move, 0, len(value.Array()))
		for i, mv := range value.Array() {
			move, merr := parseMove(mv)
			if merr != nil {
				err = fmt.Errorf("parse book json: hash %d move %d: %w", hash, i, merr)
				return false
			}
			moves = append(moves, move)
		}
		if pos, ok := seen[key.String()]; ok {
			pos.moves = moves
			return true
		}
		seen[key.String()] = &position{hash: hash, moves: moves}
		order = append(order, key.String())
		return true
	})
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, k := range order {
		pos := seen[k]
		for _, mv := range pos.moves {
			entries = append(entries, Entry{Hash: pos.hash, Move: mv})
		}
	}
	return entries, nil
}

func parseMove(v gjson.Result) (Move, error) {
	pair := v.Array()
	if !v.IsArray() || len(pair) != 2 {
		return Move{}, errors.New("expected [[row, col], [row, col]]")
	}
	from, err := parseCoord(pair[0])
	if err != nil {
		return Move{}, fmt.Errorf("from: %w", err)
	}
	to, err := parseCoord(pair[1])
	if err != nil {
		return Move{}, fmt.Errorf("to: %w", err)
	}
	return MoveFromCoords(from, to), nil
}

func parseCoord(v gjson.Result) (Coord, error) {
	rc := v.Array()
	if !v.IsArray() || len(rc) != 2 {
		return Coord{}, errors.New("expected [row, col]")
	}
	if rc[0].Type != gjson.Number || rc[1].Type != gjson.Number {
		return Coord{}, errors.New("coordinates must be numbers")
	}
	for _, v := range rc {
		if v.Float() != float64(v.Int()) {
			return Coord{}, fmt.Errorf("coordinate %s is not an integer", v.Raw)
		}
	}
	return Coord{Row: int(rc[0].Int()), Col: int(rc[1].Int())}, nil
}
