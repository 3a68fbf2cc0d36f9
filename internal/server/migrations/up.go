package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Up applies every pending migration of the given dialect directory to db.
// A goose Provider is used so no package-level goose state is touched.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) ([]*goose.MigrationResult, error) {
	sub, err := fs.Sub(Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations dir %q: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	return provider.Up(ctx)
}
