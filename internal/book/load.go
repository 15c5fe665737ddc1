package book

import (
	"fmt"
	"math/rand/v2"
	"os"
)

// Book is a compiled opening book held in memory.
type Book struct {
	entries []Entry
	index   map[uint64][]Move
	rng     *rand.Rand
}

type Option func(*Book)

// WithRand makes Lookup draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(b *Book) { b.rng = r }
}

// Load reads a binary book from path.
func Load(path string, opts ...Option) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open book: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("read book %s: %w", path, err)
	}
	return New(entries, opts...), nil
}

// New indexes entries by position hash.
func New(entries []Entry, opts ...Option) *Book {
	b := &Book{
		entries: entries,
		index:   make(map[uint64][]Move),
	}
	for _, e := range entries {
		b.index[e.Hash] = append(b.index[e.Hash], e.Move)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Book) Len() int { return len(b.entries) }

func (b *Book) Entries() []Entry { return b.entries }

// Moves returns every book move for hash in file order.
func (b *Book) Moves(hash uint64) []Move {
	return b.index[hash]
}

// Lookup picks one of the book moves for hash uniformly at random.
func (b *Book) Lookup(hash uint64) (Move, bool) {
	moves := b.index[hash]
	if len(moves) == 0 {
		return Move{}, false
	}
	var i int
	if b.rng != nil {
		i = b.rng.IntN(len(moves))
	} else {
		i = rand.IntN(len(moves))
	}
	return moves[i], true
}
