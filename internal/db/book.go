package db

import (
	"context"
	"strconv"

	"xqbook/internal/book"
)

// ReplaceBook swaps the mirrored book for entries in a single transaction.
// Row ids follow the order of entries.
func (s *Store) ReplaceBook(ctx context.Context, entries []book.Entry) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM book_moves`); err != nil {
		return err
	}
	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO book_moves (id, position_hash, from_square, to_square)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err = stmt.ExecContext(ctx, i+1, int64(e.Hash), e.Move.From, e.Move.To); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) CountMoves(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM book_moves`)
	return n, err
}

// MovesByHash returns the moves for a position in book order.
func (s *Store) MovesByHash(ctx context.Context, hash uint64) ([]book.Move, error) {
	rows := []BookMove{}
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, position_hash, from_square, to_square
		FROM book_moves
		WHERE position_hash = ?
		ORDER BY id ASC
	`, int64(hash)); err != nil {
		return nil, err
	}
	out := make([]book.Move, 0, len(rows))
	for _, row := range rows {
		out = append(out, book.Move{From: row.FromSquare, To: row.ToSquare})
	}
	return out, nil
}

// Entries returns every mirrored record in book order.
func (s *Store) Entries(ctx context.Context) ([]book.Entry, error) {
	rows := []BookMove{}
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, position_hash, from_square, to_square
		FROM book_moves
		ORDER BY id ASC
	`); err != nil {
		return nil, err
	}
	out := make([]book.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, book.Entry{
			Hash: uint64(row.PositionHash),
			Move: book.Move{From: row.FromSquare, To: row.ToSquare},
		})
	}
	return out, nil
}

func (s *Store) GetBookInfo(ctx context.Context) (BookInfo, error) {
	rows := []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT key, CAST(value AS TEXT) AS value
		FROM book_meta
	`); err != nil {
		return BookInfo{}, err
	}
	var info BookInfo
	for _, row := range rows {
		switch row.Key {
		case "source_path":
			info.SourcePath = row.Value
		case "records":
			if v, err := strconv.Atoi(row.Value); err == nil {
				info.Records = v
			}
		case "positions":
			if v, err := strconv.Atoi(row.Value); err == nil {
				info.Positions = v
			}
		}
	}
	return info, nil
}

func (s *Store) UpdateBookInfo(ctx context.Context, info BookInfo) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	upsert := `INSERT INTO book_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err = tx.ExecContext(ctx, upsert, "source_path", info.SourcePath); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, upsert, "records", info.Records); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, upsert, "positions", info.Positions); err != nil {
		return err
	}

	return tx.Commit()
}
