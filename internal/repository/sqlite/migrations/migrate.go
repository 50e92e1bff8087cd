package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"

	"timesheet-manager/internal/errors"
)

//go:embed *.sql
var migrationFS embed.FS

// migration pairs the forward and rollback scripts for one schema version
type migration struct {
	version int
	up      string
	down    string
}

// Run applies every pending migration in version order. Each migration
// executes in its own transaction together with its bookkeeping row, so a
// partially migrated database resumes where it stopped.
func Run(ctx context.Context, db *sql.DB) error {
	if err := ensureVersionTable(ctx, db); err != nil {
		return err
	}

	known, err := load()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range known {
		if applied[m.version] {
			continue
		}
		record := `INSERT INTO migrations (version) VALUES (?)`
		if err := runInTx(ctx, db, m.up, record, m.version); err != nil {
			return errors.NewDatabaseError(fmt.Sprintf("apply migration %d", m.version), err)
		}
	}

	return nil
}

// RollbackLast reverts the most recently applied migration using its down
// script. A database with nothing applied is left untouched.
func RollbackLast(ctx context.Context, db *sql.DB) error {
	if err := ensureVersionTable(ctx, db); err != nil {
		return err
	}

	var version int
	err := db.QueryRowContext(ctx, `SELECT version FROM migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.NewDatabaseError("read applied migrations", err)
	}

	known, err := load()
	if err != nil {
		return err
	}

	for _, m := range known {
		if m.version != version {
			continue
		}
		record := `DELETE FROM migrations WHERE version = ?`
		if err := runInTx(ctx, db, m.down, record, m.version); err != nil {
			return errors.NewDatabaseError(fmt.Sprintf("roll back migration %d", m.version), err)
		}
		return nil
	}

	return errors.NewDatabaseError(
		fmt.Sprintf("roll back migration %d", version),
		fmt.Errorf("no down script embedded for version %d", version),
	)
}

func ensureVersionTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return errors.NewDatabaseError("create migrations table", err)
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM migrations`)
	if err != nil {
		return nil, errors.NewDatabaseError("read applied migrations", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, errors.NewDatabaseError("scan migration version", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("read applied migrations", err)
	}
	return applied, nil
}

// load reads the embedded up/down script pairs, sorted by version. Every up
// script must ship with its down counterpart.
func load() ([]migration, error) {
	entries, err := migrationFS.ReadDir(".")
	if err != nil {
		return nil, errors.NewDatabaseError("read embedded migrations", err)
	}

	var migrations []migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version == 0 {
			continue
		}

		up, err := migrationFS.ReadFile(name)
		if err != nil {
			return nil, errors.NewDatabaseError("read migration "+name, err)
		}

		downName := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
		down, err := migrationFS.ReadFile(downName)
		if err != nil {
			return nil, errors.NewDatabaseError("read migration "+downName, err)
		}

		migrations = append(migrations, migration{
			version: version,
			up:      string(up),
			down:    string(down),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})

	return migrations, nil
}

// runInTx executes a migration script and its bookkeeping statement in a
// single transaction.
func runInTx(ctx context.Context, db *sql.DB, script string, record string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, script); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, record, version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
