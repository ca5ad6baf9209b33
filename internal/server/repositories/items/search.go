package items

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/dmitrijs2005/repovault/internal/encx"
	"github.com/dmitrijs2005/repovault/internal/server/models"
)

// binder collects positional arguments and hands out their placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// clause is one conjunct of a search. Column names are fixed by the clause
// constructors below; values only ever reach the query as placeholders.
type clause interface {
	sql(b *binder) string
}

type rawClause string

func (c rawClause) sql(*binder) string { return string(c) }

type scopeClause []models.SearchScope

func (c scopeClause) sql(b *binder) string {
	parts := make([]string, 0, len(c))
	for _, s := range c {
		p := "v.repository = " + b.bind(s.Repository)
		if len(s.Roots) > 0 {
			p += ` AND EXISTS (SELECT 1 FROM SCHEMA_NAME.item_full_view r
				WHERE r.id = ANY(` + b.bind(dbx.Int64s(s.Roots)) + `::bigint[])
				AND r.repository = v.repository
				AND (r.id = v.id OR starts_with(v.absolute_path, r.absolute_path || '/')))`
		}
		parts = append(parts, "("+p+")")
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// containsClause is a case-insensitive substring match on decoded text.
// column must hold the lower-cased plain form (the *_folded columns), so an
// escape such as %20 never matches the digits "20" and a typed '%' only
// matches a literal percent sign.
type containsClause struct {
	column string
	value  encx.EncString
}

func (c containsClause) sql(b *binder) string {
	return "strpos(" + c.column + ", lower(" + b.bind(c.value.Plain()) + ")) > 0"
}

type rangeClause struct {
	column string
	r      models.Int64Range
}

func (c rangeClause) sql(b *binder) string {
	var parts []string
	if c.r.Min != nil {
		parts = append(parts, c.column+" >= "+b.bind(*c.r.Min))
	}
	if c.r.Max != nil {
		parts = append(parts, c.column+" <= "+b.bind(*c.r.Max))
	}
	return strings.Join(parts, " AND ")
}

type ownersClause []models.UserID

func (c ownersClause) sql(b *binder) string {
	return "v.owner = ANY(" + b.bind(dbx.Int64s([]models.UserID(c))) + "::bigint[])"
}

// searchClauses turns q into its conjuncts. Only regular files match.
func searchClauses(q models.ItemSearch) ([]clause, error) {
	if len(q.Scopes) == 0 {
		return nil, fmt.Errorf("%w: search needs at least one repository scope", common.ErrInvalidArgument)
	}
	for _, s := range q.Scopes {
		if !s.Repository.IsValid() {
			return nil, fmt.Errorf("%w: search scope without repository", common.ErrInvalidArgument)
		}
	}

	out := []clause{rawClause("v.is_regular_file"), scopeClause(q.Scopes)}
	if q.Name != nil && !q.Name.IsEmpty() {
		out = append(out, containsClause{column: "v.name_folded", value: *q.Name})
	}
	if q.Mimetype != nil && !q.Mimetype.IsEmpty() {
		out = append(out, containsClause{column: "v.mimetype_folded", value: *q.Mimetype})
	}
	out = append(out,
		rangeClause{column: "v.timestamp", r: q.Timestamp},
		rangeClause{column: "v.size", r: q.Size},
	)
	if len(q.Owners) > 0 {
		out = append(out, ownersClause(q.Owners))
	}
	if f := strings.TrimPrefix(trashFilter(q.Trash), " AND "); f != "" {
		out = append(out, rawClause(f))
	}
	return out, nil
}

// buildSearch renders the WHERE body for q and its arguments.
func buildSearch(q models.ItemSearch) (string, []any, error) {
	clauses, err := searchClauses(q)
	if err != nil {
		return "", nil, err
	}

	b := &binder{}
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if s := c.sql(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " AND "), b.args, nil
}
