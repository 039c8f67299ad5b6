package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// Migration is one numbered schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func (s *Store) migrationFiles() (fs.FS, error) {
	return fs.Sub(migrationFS, "migrations/"+string(s.dialect))
}

// readMigrations parses NNN_name.sql files sorted by version
func readMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid migration filename %s (expected NNN_name.sql)", entry.Name())
		}
		version, err := strconv.Atoi(parts[0])
		if err != nil || version < 1 {
			return nil, fmt.Errorf("invalid version number in migration filename %s", entry.Name())
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(parts[1], ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}
	return migrations, nil
}

func (s *Store) currentVersion(ctx context.Context) (int, error) {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	var version int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}

// Migrate applies every pending embedded migration, each in its own transaction,
// and returns how many were applied.
func (s *Store) Migrate(ctx context.Context) (int, error) {
	log := logger.Ctx(ctx).With(logger.String("dialect", string(s.dialect)))

	fsys, err := s.migrationFiles()
	if err != nil {
		return 0, fmt.Errorf("failed to access migrations: %w", err)
	}
	migrations, err := readMigrations(fsys)
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, nil
	}

	current, err := s.currentVersion(ctx)
	if err != nil {
		return 0, err
	}
	latest := migrations[len(migrations)-1].Version
	if current > latest {
		return 0, fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}

	start := time.Now()
	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		log.Info("applying migration", logger.Int("version", m.Version), logger.String("name", m.Name))

		err := s.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
				return fmt.Errorf("failed to clear schema version: %w", err)
			}
			if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO schema_version (version) VALUES (?)`), m.Version); err != nil {
				return fmt.Errorf("failed to set schema version: %w", err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied++
	}

	if applied > 0 {
		log.Info("migrations applied", logger.Int("count", applied), logger.Duration("duration", time.Since(start)))
	} else {
		log.Debug("schema up to date", logger.Int("version", current))
	}
	return applied, nil
}
