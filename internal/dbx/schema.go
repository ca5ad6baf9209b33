package dbx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/jackc/pgx/v5"
)

// SchemaPlaceholder is the token replaced by the quoted schema name in every
// statement and migration script.
const SchemaPlaceholder = "SCHEMA_NAME"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Schema is the PostgreSQL schema holding all repovault tables. It is passed
// explicitly to every repository constructor.
type Schema string

// NewSchema validates name as a plain SQL identifier.
func NewSchema(name string) (Schema, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("%w: schema name %q is not a plain identifier", common.ErrInvalidArgument, name)
	}
	return Schema(name), nil
}

// Quoted returns the schema as a safely quoted identifier.
func (s Schema) Quoted() string {
	return pgx.Identifier{string(s)}.Sanitize()
}

// Q substitutes the schema placeholder in query.
func (s Schema) Q(query string) string {
	return strings.ReplaceAll(query, SchemaPlaceholder, s.Quoted())
}
