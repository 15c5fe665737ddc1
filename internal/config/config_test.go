package config

import (
	"os"
	"testing"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv restores the previous value when the test ends.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %s: %v", key, err)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	unsetenv(t, "XQBOOK_JSON_PATH", "XQBOOK_BIN_PATH", "XQBOOK_DB_PATH", "XQBOOK_ZOBRIST_SEED")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{BookJSONPath: "opening_book.json", BookBinPath: "opening_book.bin"}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("XQBOOK_JSON_PATH", "data/book.json")
	t.Setenv("XQBOOK_BIN_PATH", "data/book.bin")
	t.Setenv("XQBOOK_DB_PATH", "data/book.sqlite")
	t.Setenv("XQBOOK_ZOBRIST_SEED", "42")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{
		BookJSONPath: "data/book.json",
		BookBinPath:  "data/book.bin",
		BookDBPath:   "data/book.sqlite",
		ZobristSeed:  42,
	}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestFromEnvBadSeed(t *testing.T) {
	t.Setenv("XQBOOK_ZOBRIST_SEED", "not-a-number")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for bad seed")
	}
}

func TestWithArgs(t *testing.T) {
	base := Config{BookJSONPath: "a.json", BookBinPath: "a.bin"}

	if got := base.WithArgs(nil); got != base {
		t.Fatalf("no args changed config: %+v", got)
	}
	got := base.WithArgs([]string{"b.json"})
	if got.BookJSONPath != "b.json" || got.BookBinPath != "a.bin" {
		t.Fatalf("one arg => %+v", got)
	}
	got = base.WithArgs([]string{"b.json", "b.bin"})
	if got.BookJSONPath != "b.json" || got.BookBinPath != "b.bin" {
		t.Fatalf("two args => %+v", got)
	}
}
