package book

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []Entry
	}{
		{
			name: "single move",
			json: `{"123456789": [[[0,0],[1,0]]]}`,
			want: []Entry{{Hash: 123456789, Move: Move{From: 0, To: 9}}},
		},
		{
			name: "two moves one hash",
			json: `{"5": [[[0,0],[0,1]],[[9,8],[9,7]]]}`,
			want: []Entry{
				{Hash: 5, Move: Move{From: 0, To: 1}},
				{Hash: 5, Move: Move{From: 89, To: 88}},
			},
		},
		{
			name: "document order kept",
			json: `{"900": [[[2,1],[2,4]]], "7": [[[0,1],[2,2]]], "18446744073709551615": [[[3,0],[4,0]]]}`,
			want: []Entry{
				{Hash: 900, Move: Move{From: 19, To: 22}},
				{Hash: 7, Move: Move{From: 1, To: 20}},
				{Hash: 18446744073709551615, Move: Move{From: 27, To: 36}},
			},
		},
		{
			name: "empty move list",
			json: `{"1": [], "2": [[[0,0],[0,2]]]}`,
			want: []Entry{{Hash: 2, Move: Move{From: 0, To: 2}}},
		},
		{
			name: "repeated key keeps first position and last list",
			json: `{"5": [[[0,0],[0,1]]], "7": [[[2,1],[2,4]]], "5": [[[9,8],[9,7]]]}`,
			want: []Entry{
				{Hash: 5, Move: Move{From: 89, To: 88}},
				{Hash: 7, Move: Move{From: 19, To: 22}},
			},
		},
		{
			name: "repeated key with empty last list",
			json: `{"5": [[[0,0],[0,1]]], "5": []}`,
			want: []Entry{},
		},
		{
			name: "integral float coordinates",
			json: `{"8": [[[1.0,0],[2,0e0]]]}`,
			want: []Entry{{Hash: 8, Move: Move{From: 9, To: 18}}},
		},
		{
			name: "out of range encoded as is",
			json: `{"3": [[[12,-1],[0,20]]]}`,
			want: []Entry{{Hash: 3, Move: Move{From: 107, To: 20}}},
		},
	}

	for _, tt := range tests {
		got, err := ParseJSON([]byte(tt.json))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d entries want %d", tt.name, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: entry %d => got %+v want %+v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseJSONErrors(t *testing.T) {
	inputs := []string{
		`{"1": [[[0,0],[1,0]]`,
		`[1, 2]`,
		`{"abc": []}`,
		`{"-4": []}`,
		`{"1": {"a": 1}}`,
		`{"1": [[[0,0]]]}`,
		`{"1": [[[0,0],[1]]]}`,
		`{"1": [[["0",0],[1,0]]]}`,
		`{"5": [[[1.5,0],[0,1]]]}`,
		`{"5": [[[0,0],[0,-2.25]]]}`,
	}
	for _, in := range inputs {
		if _, err := ParseJSON([]byte(in)); err == nil {
			t.Fatalf("input %s: expected error", in)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	entries := []Entry{
		{Hash: 0, Move: Move{From: 0, To: 0}},
		{Hash: 123456789, Move: Move{From: 0, To: 9}},
		{Hash: 0xffffffffffffffff, Move: Move{From: 89, To: 88}},
		{Hash: 0x8000000000000001, Move: Move{From: -1, To: 1 << 30}},
	}

	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != RecordSize*len(entries) {
		t.Fatalf("got %d bytes want %d", buf.Len(), RecordSize*len(entries))
	}

	got, err := ReadEntries(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d => got %+v want %+v", i, got[i], entries[i])
		}
	}
}

func TestRecordLayout(t *testing.T) {
	rec := AppendRecord(nil, Entry{Hash: 123456789, Move: Move{From: 0, To: 9}})
	want := []byte{
		0x15, 0xcd, 0x5b, 0x07, 0, 0, 0, 0,
		0, 0, 0, 0,
		9, 0, 0, 0,
	}
	if !bytes.Equal(rec, want) {
		t.Fatalf("got % x want % x", rec, want)
	}

	var put [RecordSize]byte
	PutRecord(put[:], Entry{Hash: 123456789, Move: Move{From: 0, To: 9}})
	if !bytes.Equal(put[:], want) {
		t.Fatalf("PutRecord got % x want % x", put, want)
	}
}

func TestReadEntriesTruncated(t *testing.T) {
	buf := AppendRecord(nil, Entry{Hash: 1, Move: Move{From: 2, To: 3}})
	buf = append(buf, 1, 2, 3)

	got, err := ReadEntries(bytes.NewReader(buf))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got err %v want ErrTruncated", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries want 1", len(got))
	}
	if _, err := DecodeRecord(buf[:10]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("DecodeRecord short buffer: got %v", err)
	}
}

func TestMoveString(t *testing.T) {
	m := MoveFromCoords(Coord{Row: 9, Col: 1}, Coord{Row: 7, Col: 2})
	if got := m.String(); got != "91-72" {
		t.Fatalf("got %q want %q", got, "91-72")
	}
}
