package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"xqbook/internal/book"
	"xqbook/internal/config"
	"xqbook/internal/db"
)

// usage: mkbook [opening_book.json [opening_book.bin]]
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg.WithArgs(os.Args[1:]), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run compiles the book described by cfg. A missing source is reported on
// out and is not an error.
func run(cfg config.Config, out io.Writer) error {
	stats, err := book.Compile(cfg.BookJSONPath, cfg.BookBinPath)
	if errors.Is(err, book.ErrSourceMissing) {
		fmt.Fprintf(out, "Error: %s not found.\n", cfg.BookJSONPath)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("compiled %d moves for %d positions (%d bytes)", stats.Records, stats.Positions, stats.Bytes)

	if cfg.BookDBPath != "" {
		if err := mirror(cfg); err != nil {
			return err
		}
		log.Printf("mirrored book into %s", cfg.BookDBPath)
	}

	fmt.Fprintf(out, "Successfully created binary opening book at %s\n", cfg.BookBinPath)
	return nil
}

func mirror(cfg config.Config) error {
	b, err := book.Load(cfg.BookBinPath)
	if err != nil {
		return err
	}
	store, err := db.Open(cfg.BookDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := store.ReplaceBook(ctx, b.Entries()); err != nil {
		return fmt.Errorf("mirror book: %w", err)
	}
	positions := make(map[uint64]struct{})
	for _, e := range b.Entries() {
		positions[e.Hash] = struct{}{}
	}
	return store.UpdateBookInfo(ctx, db.BookInfo{
		SourcePath: cfg.BookJSONPath,
		Records:    b.Len(),
		Positions:  len(positions),
	})
}
