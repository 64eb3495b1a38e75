package permissions

import "github.com/dmitrijs2005/songregistry/internal/dbx"

var sqliteQueries = queries{
	get: `SELECT authorized FROM permissions WHERE entry_id = ? AND principal = ?`,
	insert: `INSERT INTO permissions (entry_id, principal, authorized) VALUES (?, ?, ?)
		ON CONFLICT (entry_id, principal) DO NOTHING`,
	list: `SELECT entry_id, principal, authorized FROM permissions ORDER BY entry_id, principal`,
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sqliteQueries}
}
