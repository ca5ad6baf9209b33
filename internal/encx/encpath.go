package encx

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/repovault/internal/common"
)

// EncPath is an ordered root-to-leaf list of encoded segments. Its text form
// is "/seg1/seg2"; the empty path is "".
type EncPath []EncString

// ParseEncPath splits s on '/', drops empty segments and validates the rest.
func ParseEncPath(s string) (EncPath, error) {
	parts := strings.Split(s, "/")
	path := make(EncPath, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		seg, err := ParseEncString(part)
		if err != nil {
			return nil, fmt.Errorf("invalid encoded path: %w", err)
		}
		path = append(path, seg)
	}
	return path, nil
}

// NewEncPath encodes plain segments. Segments may contain '/', which is
// escaped like any other reserved byte.
func NewEncPath(plain ...string) EncPath {
	path := make(EncPath, 0, len(plain))
	for _, p := range plain {
		if p == "" {
			continue
		}
		path = append(path, Encode(p))
	}
	return path
}

func (p EncPath) String() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(seg.Encoded())
	}
	return sb.String()
}

// Plain joins the decoded segments.
func (p EncPath) Plain() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(seg.Plain())
	}
	return sb.String()
}

// Append returns a new path with seg added as the leaf.
func (p EncPath) Append(seg EncString) EncPath {
	out := make(EncPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Parent drops the leaf. The parent of the empty path is the empty path.
func (p EncPath) Parent() EncPath {
	if len(p) == 0 {
		return EncPath{}
	}
	return p[:len(p)-1:len(p)-1]
}

// Name is the leaf segment, or the empty string for the empty path.
func (p EncPath) Name() EncString {
	if len(p) == 0 {
		return EncString{}
	}
	return p[len(p)-1]
}

func (p EncPath) Equal(o EncPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p EncPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *EncPath) UnmarshalText(b []byte) error {
	v, err := ParseEncPath(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p EncPath) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *EncPath) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = EncPath{}
		return nil
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into EncPath", common.ErrInvalidArgument, src)
	}
}
