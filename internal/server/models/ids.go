// Package models defines the server-side domain types persisted by the
// repository storage engine.
package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/repovault/internal/common"
)

// ID is a 64-bit surrogate key. The type parameter only separates key
// kinds at compile time. Zero means "not yet assigned".
type ID[K any] int64

type (
	userKind       struct{}
	repositoryKind struct{}
	itemKind       struct{}
	objectKind     struct{}
)

type (
	UserID       = ID[userKind]
	RepositoryID = ID[repositoryKind]
	ItemID       = ID[itemKind]
	ObjectID     = ID[objectKind]
)

func (id ID[K]) IsValid() bool { return id != 0 }

func (id ID[K]) String() string { return strconv.FormatInt(int64(id), 10) }

// MarshalText renders the id as a decimal string so JSON clients never
// lose precision on 64-bit values.
func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID[K]) UnmarshalText(b []byte) error {
	v, err := parseID[K](string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id ID[K]) Value() (driver.Value, error) {
	return int64(id), nil
}

func (id *ID[K]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = 0
	case int64:
		*id = ID[K](v)
	case int32:
		*id = ID[K](v)
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into id", common.ErrInvalidArgument, src)
	}
	return nil
}

func parseID[K any](s string) (ID[K], error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed id %q", common.ErrInvalidArgument, s)
	}
	return ID[K](v), nil
}

func ParseUserID(s string) (UserID, error)             { return parseID[userKind](s) }
func ParseRepositoryID(s string) (RepositoryID, error) { return parseID[repositoryKind](s) }
func ParseItemID(s string) (ItemID, error)             { return parseID[itemKind](s) }
func ParseObjectID(s string) (ObjectID, error)         { return parseID[objectKind](s) }

// ErrIDAlreadySet is returned when assigning an id to a persisted entity.
var ErrIDAlreadySet = fmt.Errorf("%w: cannot override a valid id", common.ErrInvalidArgument)

func assignID[K any](dst *ID[K], id ID[K]) error {
	if dst.IsValid() {
		return ErrIDAlreadySet
	}
	*dst = id
	return nil
}
