package book

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCompile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "opening_book.json")
	dst := filepath.Join(dir, "opening_book.bin")
	json := `{"5": [[[0,0],[0,1]],[[9,8],[9,7]]], "123456789": [[[0,0],[1,0]]]}`
	if err := os.WriteFile(src, []byte(json), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}

	stats, err := Compile(src, dst)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if stats.Positions != 2 || stats.Records != 3 || stats.Bytes != 48 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() != 3*RecordSize {
		t.Fatalf("got size %d want %d", info.Size(), 3*RecordSize)
	}

	b, err := Load(dst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []Entry{
		{Hash: 5, Move: Move{From: 0, To: 1}},
		{Hash: 5, Move: Move{From: 89, To: 88}},
		{Hash: 123456789, Move: Move{From: 0, To: 9}},
	}
	got := b.Entries()
	if len(got) != len(want) {
		t.Fatalf("got %d entries want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d => got %+v want %+v", i, got[i], want[i])
		}
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp*"))
	if len(leftovers) != 0 {
		t.Fatalf("temporary files left behind: %v", leftovers)
	}
}

func TestCompileMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "opening_book.bin")

	_, err := Compile(filepath.Join(dir, "nope.json"), dst)
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("got err %v want ErrSourceMissing", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("output file should not exist, stat err: %v", err)
	}
}

func TestCompileBadJSONKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "opening_book.json")
	dst := filepath.Join(dir, "opening_book.bin")
	if err := os.WriteFile(src, []byte(`{"1": [[[0,0],`), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	previous := AppendRecord(nil, Entry{Hash: 42, Move: Move{From: 1, To: 2}})
	if err := os.WriteFile(dst, previous, 0o644); err != nil {
		t.Fatalf("write old book: %v", err)
	}

	if _, err := Compile(src, dst); err == nil {
		t.Fatal("expected error for malformed json")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read old book: %v", err)
	}
	if string(data) != string(previous) {
		t.Fatal("existing book was modified by a failed compile")
	}
}

func TestCompileEmptyBook(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "opening_book.json")
	dst := filepath.Join(dir, "opening_book.bin")
	if err := os.WriteFile(src, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}

	stats, err := Compile(src, dst)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if stats.Records != 0 {
		t.Fatalf("got %d records want 0", stats.Records)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("got size %d want 0", info.Size())
	}
}
