package models

// Trash selects which items a read operation may see.
type Trash int

const (
	// TrashExclude hides soft-deleted items.
	TrashExclude Trash = iota
	// TrashOnly returns soft-deleted items only.
	TrashOnly
	// TrashEither ignores the trash flag.
	TrashEither
)

func (t Trash) String() string {
	switch t {
	case TrashOnly:
		return "only"
	case TrashEither:
		return "either"
	default:
		return "exclude"
	}
}

// ParseTrash maps the wire form; anything unknown excludes trashed items.
func ParseTrash(s string) Trash {
	switch s {
	case "only":
		return TrashOnly
	case "either":
		return TrashEither
	default:
		return TrashExclude
	}
}

func (t Trash) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Trash) UnmarshalText(b []byte) error {
	*t = ParseTrash(string(b))
	return nil
}
