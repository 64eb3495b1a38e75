package entries

import "github.com/dmitrijs2005/songregistry/internal/dbx"

var postgresQueries = queries{
	get: `SELECT id, title, artist, owner, duration, creation_height, genre, tags
		FROM entries WHERE id = $1`,
	insert: `INSERT INTO entries (id, title, artist, owner, duration, creation_height, genre, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
	set: `UPDATE entries SET title = $1, artist = $2, owner = $3, duration = $4,
		creation_height = $5, genre = $6, tags = $7
		WHERE id = $8`,
	list: `SELECT id, title, artist, owner, duration, creation_height, genre, tags
		FROM entries ORDER BY id`,
}

// NewPostgresRepository constructs a PostgreSQL repository bound to db.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}
