// Package migrations holds the ordered SQL scripts that create the storage
// schema and applies them with goose. Every script refers to the schema as
// SCHEMA_NAME; the configured schema is substituted before execution.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var scripts embed.FS

var fileRe = regexp.MustCompile(`^(\d+)_[A-Za-z0-9_\-]+\.sql$`)

// Script is one migration with the schema already substituted.
type Script struct {
	Version int64
	Name    string
	SQL     string
}

// Load reads the scripts from fsys (the embedded set when nil), orders them
// by the numeric prefix of their filename and substitutes schema. Files that
// are not .sql are ignored.
func Load(fsys fs.FS, schema dbx.Schema) ([]Script, error) {
	if fsys == nil {
		sub, err := fs.Sub(scripts, "sql")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var out []Script
	seen := make(map[int64]string)
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		m := fileRe.FindStringSubmatch(e.Name())
		if m == nil {
			return nil, fmt.Errorf("migration %q: filename must start with a numeric version", e.Name())
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || version < 1 {
			return nil, fmt.Errorf("migration %q: bad version", e.Name())
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("migration %q: version %d already used by %q", e.Name(), version, prev)
		}
		seen[version] = e.Name()

		body, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("migration %q: %w", e.Name(), err)
		}
		out = append(out, Script{Version: version, Name: e.Name(), SQL: schema.Q(string(body))})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func goMigrations(scripts []Script) []*goose.Migration {
	out := make([]*goose.Migration, 0, len(scripts))
	for _, s := range scripts {
		query := s.SQL
		out = append(out, goose.NewGoMigration(s.Version, &goose.GoFunc{
			RunTx: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, query)
				return err
			},
		}, nil))
	}
	return out
}

// newProvider and runUp are seams for tests.
var newProvider = goose.NewProvider

var runUp = func(ctx context.Context, p *goose.Provider) ([]*goose.MigrationResult, error) {
	return p.Up(ctx)
}

// Up applies every pending migration. Already applied versions are skipped,
// so running it on every start is safe.
func Up(ctx context.Context, db *sql.DB, schema dbx.Schema) ([]*goose.MigrationResult, error) {
	loaded, err := Load(nil, schema)
	if err != nil {
		return nil, err
	}

	p, err := newProvider(goose.DialectPostgres, db, nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithGoMigrations(goMigrations(loaded)...),
	)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	res, err := runUp(ctx, p)
	if err != nil {
		return res, fmt.Errorf("apply migrations: %w", err)
	}
	return res, nil
}
