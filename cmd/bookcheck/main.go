package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"xqbook/internal/book"
	"xqbook/internal/config"
	"xqbook/internal/db"
	"xqbook/internal/zobrist"
)

// usage: bookcheck [book.bin [hash|fen]]
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return
	}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
	}
}

func run(cfg config.Config, args []string, out io.Writer) error {
	path := cfg.BookBinPath
	if len(args) > 0 {
		path = args[0]
	}
	b, err := book.Load(path)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}
	fmt.Fprintln(out, "entries:", b.Len())

	query := zobrist.StartFEN
	if len(args) > 1 {
		query = strings.Join(args[1:], " ")
	}
	hash, err := parseQuery(query)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}
	move, ok := b.Lookup(hash)
	fmt.Fprintf(out, "hash 0x%016x moves: %v\n", hash, b.Moves(hash))
	fmt.Fprintln(out, "book move:", move, "ok:", ok)

	if cfg.BookDBPath != "" {
		if err := checkMirror(out, cfg.BookDBPath, b, hash); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// parseQuery accepts a decimal or 0x-prefixed hash, or a FEN.
func parseQuery(q string) (uint64, error) {
	if h, err := strconv.ParseUint(q, 0, 64); err == nil {
		return h, nil
	}
	return zobrist.HashFEN(q)
}

// checkMirror compares the SQLite mirror at path against b, record by record
// and for the queried position.
func checkMirror(out io.Writer, path string, b *book.Book, hash uint64) error {
	store, err := db.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	info, err := store.GetBookInfo(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "db book: source=%s records=%d positions=%d\n", info.SourcePath, info.Records, info.Positions)

	n, err := store.CountMoves(ctx)
	if err != nil {
		return err
	}
	entries, err := store.Entries(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "db entries:", n, "match:", n == b.Len() && slices.Equal(entries, b.Entries()))

	moves, err := store.MovesByHash(ctx, hash)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "db moves: %v match: %v\n", moves, slices.Equal(moves, b.Moves(hash)))
	return nil
}
