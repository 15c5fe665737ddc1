package db

// BookMove is one row of book_moves.
type BookMove struct {
	ID           int64 `db:"id"`
	PositionHash int64 `db:"position_hash"`
	FromSquare   int32 `db:"from_square"`
	ToSquare     int32 `db:"to_square"`
}

// BookInfo describes the book currently mirrored in the database.
type BookInfo struct {
	SourcePath string
	Records    int
	Positions  int
}
