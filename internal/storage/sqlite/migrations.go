package sqlite

import "database/sql"

// schema holds one row per persisted key. kind says which of int_value or
// data carries the value.
const schema = `
CREATE TABLE IF NOT EXISTS persist (
    key INTEGER PRIMARY KEY,
    kind TEXT NOT NULL CHECK (kind IN ('int', 'data')),
    int_value INTEGER,
    data BLOB,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
