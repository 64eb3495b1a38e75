package permissions

import "github.com/dmitrijs2005/songregistry/internal/dbx"

var postgresQueries = queries{
	get: `SELECT authorized FROM permissions WHERE entry_id = $1 AND principal = $2`,
	insert: `INSERT INTO permissions (entry_id, principal, authorized) VALUES ($1, $2, $3)
		ON CONFLICT (entry_id, principal) DO NOTHING`,
	list: `SELECT entry_id, principal, authorized FROM permissions ORDER BY entry_id, principal`,
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}
