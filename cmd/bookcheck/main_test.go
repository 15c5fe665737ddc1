package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xqbook/internal/book"
	"xqbook/internal/config"
	"xqbook/internal/db"
)

func writeBook(t *testing.T, path string, entries []book.Entry) {
	t.Helper()
	var buf bytes.Buffer
	if err := book.WriteEntries(&buf, entries); err != nil {
		t.Fatalf("write entries: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}
}

func TestRunWithMirror(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "opening_book.bin")
	dbPath := filepath.Join(dir, "book.sqlite")
	entries := []book.Entry{
		{Hash: 5, Move: book.Move{From: 0, To: 1}},
		{Hash: 7, Move: book.Move{From: 10, To: 19}},
		{Hash: 5, Move: book.Move{From: 89, To: 88}},
	}
	writeBook(t, binPath, entries)

	store, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	ctx := context.Background()
	if err := store.ReplaceBook(ctx, entries); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := store.UpdateBookInfo(ctx, db.BookInfo{SourcePath: "opening_book.json", Records: 3, Positions: 2}); err != nil {
		t.Fatalf("book info: %v", err)
	}
	_ = store.Close()

	var out bytes.Buffer
	cfg := config.Config{BookBinPath: binPath, BookDBPath: dbPath}
	if err := run(cfg, []string{binPath, "5"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"entries: 3\n",
		"hash 0x0000000000000005 moves: [00-01 98-97]\n",
		"ok: true\n",
		"db book: source=opening_book.json records=3 positions=2\n",
		"db entries: 3 match: true\n",
		"db moves: [00-01 98-97] match: true\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunMirrorMismatch(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "opening_book.bin")
	dbPath := filepath.Join(dir, "book.sqlite")
	writeBook(t, binPath, []book.Entry{{Hash: 5, Move: book.Move{From: 0, To: 1}}})

	store, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := store.ReplaceBook(context.Background(), []book.Entry{{Hash: 5, Move: book.Move{From: 0, To: 2}}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	_ = store.Close()

	var out bytes.Buffer
	cfg := config.Config{BookBinPath: binPath, BookDBPath: dbPath}
	if err := run(cfg, []string{binPath, "0x5"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "db entries: 1 match: false\n") {
		t.Fatalf("expected record mismatch:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "db moves: [00-02] match: false\n") {
		t.Fatalf("expected move mismatch:\n%s", out.String())
	}
}

func TestRunQueryByFEN(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "opening_book.bin")
	writeBook(t, binPath, []book.Entry{{Hash: 0x85ffd95d58dabd1b, Move: book.Move{From: 64, To: 67}}})

	var out bytes.Buffer
	if err := run(config.Config{BookBinPath: binPath}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "book move: 71-74 ok: true\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "db ") {
		t.Fatalf("mirror checked without a db path:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	if err := run(config.Config{BookBinPath: filepath.Join(dir, "missing.bin")}, nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected load error")
	}

	binPath := filepath.Join(dir, "opening_book.bin")
	writeBook(t, binPath, nil)
	if err := run(config.Config{}, []string{binPath, "xyz"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected query error")
	}
}
