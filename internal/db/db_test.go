package db

import (
	"context"
	"path/filepath"
	"testing"

	"xqbook/internal/book"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "book.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReplaceBook(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	entries := []book.Entry{
		{Hash: 5, Move: book.Move{From: 0, To: 1}},
		{Hash: 0xfedcba9876543210, Move: book.Move{From: 10, To: 19}},
		{Hash: 5, Move: book.Move{From: 89, To: 88}},
	}
	if err := store.ReplaceBook(ctx, entries); err != nil {
		t.Fatalf("replace: %v", err)
	}

	n, err := store.CountMoves(ctx)
	if err != nil || n != 3 {
		t.Fatalf("count => %d, %v", n, err)
	}

	moves, err := store.MovesByHash(ctx, 5)
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	if len(moves) != 2 || moves[0] != (book.Move{From: 0, To: 1}) || moves[1] != (book.Move{From: 89, To: 88}) {
		t.Fatalf("unexpected moves: %+v", moves)
	}

	moves, err = store.MovesByHash(ctx, 0xfedcba9876543210)
	if err != nil || len(moves) != 1 || moves[0] != (book.Move{From: 10, To: 19}) {
		t.Fatalf("high-bit hash => %+v, %v", moves, err)
	}

	got, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d => got %+v want %+v", i, got[i], entries[i])
		}
	}

	// replacing drops the previous book
	if err := store.ReplaceBook(ctx, entries[:1]); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	if n, _ := store.CountMoves(ctx); n != 1 {
		t.Fatalf("count after replace => %d", n)
	}
}

func TestBookInfo(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	info, err := store.GetBookInfo(ctx)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if info != (BookInfo{}) {
		t.Fatalf("expected empty info, got %+v", info)
	}

	want := BookInfo{SourcePath: "opening_book.json", Records: 3, Positions: 2}
	if err := store.UpdateBookInfo(ctx, want); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.UpdateBookInfo(ctx, want); err != nil {
		t.Fatalf("update twice: %v", err)
	}
	info, err = store.GetBookInfo(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info != want {
		t.Fatalf("got %+v want %+v", info, want)
	}
}
