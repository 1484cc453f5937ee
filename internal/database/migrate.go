package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"culture-match/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// Migration is one embedded up-script. Oracle executes a single statement per call,
// so every file holds exactly one statement.
type Migration struct {
	Version   string
	Statement string
}

// Migrations returns the embedded migrations ordered by file name.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations: %w", err)
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		content, err := fs.ReadFile(migrationFiles, "migrations/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("could not read migration %s: %w", e.Name(), err)
		}
		stmt := strings.TrimSpace(string(content))
		stmt = strings.TrimSuffix(stmt, ";")
		out = append(out, Migration{
			Version:   strings.TrimSuffix(e.Name(), ".up.sql"),
			Statement: stmt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// RunMigrations applies every migration not yet recorded in schema_migrations.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}
	if err := ensureMigrationTable(ctx, db); err != nil {
		return err
	}

	l := logger.Get()
	for _, m := range migrations {
		var applied int
		if err := db.GetContext(ctx, &applied,
			`SELECT COUNT(*) FROM schema_migrations WHERE version = :1`, m.Version); err != nil {
			return fmt.Errorf("could not check migration %s: %w", m.Version, err)
		}
		if applied > 0 {
			l.Debug("Skipping applied migration", zap.String("version", m.Version))
			continue
		}

		if _, err := db.ExecContext(ctx, m.Statement); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", m.Version, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES (:1, SYSTIMESTAMP)`, m.Version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", m.Version, err)
		}
		l.Info("Executed migration", zap.String("version", m.Version))
	}

	l.Info("Migrations completed successfully", zap.Int("total", len(migrations)))
	return nil
}

func ensureMigrationTable(ctx context.Context, db *sqlx.DB) error {
	var exists int
	if err := db.GetContext(ctx, &exists,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not look up schema_migrations: %w", err)
	}
	if exists > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `CREATE TABLE schema_migrations (
		version VARCHAR2(100) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}
