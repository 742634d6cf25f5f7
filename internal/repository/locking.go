package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgLockNotAvailable is the Postgres error code returned for
// SELECT ... FOR UPDATE NOWAIT when another transaction holds the row lock.
const pgLockNotAvailable = "55P03"

// forUpdate applies a non-blocking row lock on Postgres. SQLite (used by the
// unit tests) serializes writers per connection and rejects FOR UPDATE, so
// the clause is only added on the postgres dialect.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"})
	}
	return db
}

// IsLockContention reports whether err is a Postgres lock-not-available
// failure from a NOWAIT row lock.
func IsLockContention(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}
