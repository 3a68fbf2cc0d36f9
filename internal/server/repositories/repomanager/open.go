package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = config.DriverPostgres
	DriverSQLite   = config.DriverSQLite
)

// sqlDriverName maps a configured driver to its database/sql name.
var sqlDriverName = map[string]string{
	DriverPostgres: "pgx",
	DriverSQLite:   "sqlite",
}

// Open connects to the database and verifies the connection. SQLite handles
// are limited to one connection so writers never contend for the file lock.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	name, ok := sqlDriverName[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}
