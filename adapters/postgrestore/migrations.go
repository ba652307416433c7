package postgrestore

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFS,
		Root:       "migrations",
	}
}

// Migrate applies (up) or rolls back (down) the embedded migrations and
// returns how many were run. max limits the count, 0 means all.
func Migrate(db *sql.DB, dir migrate.MigrationDirection, max int) (int, error) {
	return migrate.ExecMax(db, "postgres", migrationSource(), dir, max)
}
