package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

func (r *PostgresRepository) fileTotals(ctx context.Context, id models.RepositoryID, inTrash bool) (count, size int64, err error) {
	query := r.schema.Q(`SELECT COUNT(*), COALESCE(SUM(f.size), 0)
		FROM SCHEMA_NAME.items i JOIN SCHEMA_NAME.files f ON f.id = i.id
		WHERE i.repository = $1 AND i.in_trash = $2`)

	err = r.db.QueryRowContext(ctx, query, id, inTrash).Scan(&count, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	return count, size, dbx.Wrap(err)
}

func (r *PostgresRepository) directoryCount(ctx context.Context, id models.RepositoryID, inTrash bool) (count int64, err error) {
	query := r.schema.Q(`SELECT COUNT(*)
		FROM SCHEMA_NAME.items i
		WHERE i.repository = $1 AND NOT i.is_regular_file AND i.in_trash = $2`)

	err = r.db.QueryRowContext(ctx, query, id, inTrash).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, dbx.Wrap(err)
}

func (r *PostgresRepository) extensions(ctx context.Context, id models.RepositoryID) ([]models.ExtensionStats, error) {
	query := r.schema.Q(`SELECT f.mimetype, COUNT(*) AS num
		FROM SCHEMA_NAME.items i JOIN SCHEMA_NAME.files f ON f.id = i.id
		WHERE i.repository = $1
		GROUP BY f.mimetype
		ORDER BY num DESC, f.mimetype`)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	out, err := dbx.CollectRows(rows, func(s dbx.Scanner) (models.ExtensionStats, error) {
		var e models.ExtensionStats
		err := s.Scan(&e.Mimetype, &e.Count)
		return e, err
	})
	if out == nil && err == nil {
		out = make([]models.ExtensionStats, 0)
	}
	return out, err
}

func (r *PostgresRepository) contributors(ctx context.Context, id models.RepositoryID) ([]models.ContributorStats, error) {
	query := r.schema.Q(`SELECT i.owner, COUNT(*) AS num
		FROM SCHEMA_NAME.items i
		WHERE i.repository = $1
		GROUP BY i.owner
		ORDER BY num DESC, i.owner`)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	out, err := dbx.CollectRows(rows, func(s dbx.Scanner) (models.ContributorStats, error) {
		var c models.ContributorStats
		err := s.Scan(&c.User, &c.Count)
		return c, err
	})
	if out == nil && err == nil {
		out = make([]models.ContributorStats, 0)
	}
	return out, err
}

// Stats runs one aggregate per counter; an empty repository yields zeros and
// empty breakdowns.
func (r *PostgresRepository) Stats(ctx context.Context, id models.RepositoryID) (*models.RepositoryStats, error) {
	var (
		st  models.RepositoryStats
		err error
	)
	if st.Items, st.Size, err = r.fileTotals(ctx, id, false); err != nil {
		return nil, err
	}
	if st.Directories, err = r.directoryCount(ctx, id, false); err != nil {
		return nil, err
	}
	if st.TrashItems, st.TrashSize, err = r.fileTotals(ctx, id, true); err != nil {
		return nil, err
	}
	if st.TrashDirectories, err = r.directoryCount(ctx, id, true); err != nil {
		return nil, err
	}
	if st.Extensions, err = r.extensions(ctx, id); err != nil {
		return nil, err
	}
	if st.Contributors, err = r.contributors(ctx, id); err != nil {
		return nil, err
	}
	return &st, nil
}
