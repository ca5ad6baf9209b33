// Package encx implements the canonical percent-encoded text used for every
// user-supplied name that ends up in a path, a URL or a query parameter.
//
// Only the unreserved set A-Z a-z 0-9 - _ . ~ is kept verbatim; every other
// byte is written as %XX with upper-case hex.
package encx

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"
)

const upperhex = "0123456789ABCDEF"

// EncString holds text in canonical percent-encoded form. The zero value is
// the empty string.
type EncString struct {
	encoded string
}

// Encode percent-encodes plain.
func Encode(plain string) EncString {
	return EncString{encoded: escape(plain)}
}

// ParseEncString accepts an already encoded string. It fails when encoded
// contains a byte outside the unreserved set, a malformed escape or a
// lower-case hex digit, so every value has exactly one encoded form.
func ParseEncString(encoded string) (EncString, error) {
	if err := validate(encoded); err != nil {
		return EncString{}, err
	}
	return EncString{encoded: encoded}, nil
}

// MustParse is ParseEncString for literals known to be canonical.
func MustParse(encoded string) EncString {
	s, err := ParseEncString(encoded)
	if err != nil {
		panic(err)
	}
	return s
}

func (s EncString) Encoded() string { return s.encoded }

// Plain returns the decoded text.
func (s EncString) Plain() string {
	if strings.IndexByte(s.encoded, '%') < 0 {
		return s.encoded
	}
	b := make([]byte, 0, len(s.encoded))
	for i := 0; i < len(s.encoded); i++ {
		c := s.encoded[i]
		if c == '%' && i+2 < len(s.encoded) {
			b = append(b, unhex(s.encoded[i+1])<<4|unhex(s.encoded[i+2]))
			i += 2
			continue
		}
		b = append(b, c)
	}
	return string(b)
}

func (s EncString) IsEmpty() bool { return s.encoded == "" }

func (s EncString) String() string { return s.encoded }

// URLFormatted derives a lower-case, dash separated ASCII slug from the plain
// text: "Été à Paris!" becomes "ete-a-paris" and "Łódź" becomes "lodz".
// Non-Latin scripts are transliterated, so "日本" becomes "ri-ben".
func (s EncString) URLFormatted() EncString {
	ascii := unidecode.Unidecode(norm.NFC.String(s.Plain()))

	words := strings.FieldsFunc(ascii, func(r rune) bool {
		return !(r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	})
	return Encode(strings.ToLower(strings.Join(words, "-")))
}

func (s EncString) MarshalText() ([]byte, error) {
	return []byte(s.encoded), nil
}

func (s *EncString) UnmarshalText(b []byte) error {
	v, err := ParseEncString(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s EncString) Value() (driver.Value, error) {
	return s.encoded, nil
}

func (s *EncString) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = EncString{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into EncString", common.ErrInvalidArgument, src)
	}
	return s.UnmarshalText([]byte(raw))
}

func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	case c == '-', c == '_', c == '.', c == '~':
		return false
	}
	return true
}

func escape(plain string) string {
	n := 0
	for i := 0; i < len(plain); i++ {
		if shouldEscape(plain[i]) {
			n++
		}
	}
	if n == 0 {
		return plain
	}

	var sb strings.Builder
	sb.Grow(len(plain) + 2*n)
	for i := 0; i < len(plain); i++ {
		c := plain[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func validate(encoded string) error {
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' {
			if i+2 >= len(encoded) || !isupperhex(encoded[i+1]) || !isupperhex(encoded[i+2]) {
				return fmt.Errorf("%w: %q has a malformed escape at offset %d", common.ErrInvalidArgument, encoded, i)
			}
			i += 2
			continue
		}
		if shouldEscape(c) {
			return fmt.Errorf("%w: %q is not an encoded string (expected %q)", common.ErrInvalidArgument, encoded, escape(encoded))
		}
	}
	return nil
}

func isupperhex(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
