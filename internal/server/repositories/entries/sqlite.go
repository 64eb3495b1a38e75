package entries

import "github.com/dmitrijs2005/songregistry/internal/dbx"

var sqliteQueries = queries{
	get: `SELECT id, title, artist, owner, duration, creation_height, genre, tags
		FROM entries WHERE id = ?`,
	insert: `INSERT INTO entries (id, title, artist, owner, duration, creation_height, genre, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
	set: `UPDATE entries SET title = ?, artist = ?, owner = ?, duration = ?,
		creation_height = ?, genre = ?, tags = ?
		WHERE id = ?`,
	list: `SELECT id, title, artist, owner, duration, creation_height, genre, tags
		FROM entries ORDER BY id`,
}

// NewSQLiteRepository constructs a SQLite repository bound to db.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sqliteQueries}
}
