// Package charset maps character set names to the byte encodings used for
// byte-mode segments.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownCharset is returned for names that match no supported
	// character set.
	ErrUnknownCharset = errors.New("charset: unknown character set")

	// ErrUnencodable is returned when content has characters the character
	// set cannot represent.
	ErrUnencodable = errors.New("charset: content not representable")
)

// Charset is a named byte encoding.
type Charset struct {
	Name    string
	Aliases []string
	enc     encoding.Encoding // nil for UTF-8
}

// pre-defined character sets
var (
	UTF8     = &Charset{"UTF-8", []string{"UTF8", "utf-8", "utf8"}, nil}
	ISO88591 = &Charset{"ISO-8859-1", []string{"ISO8859_1", "ISO8859-1", "latin1", "Latin-1"}, charmap.ISO8859_1}
)

var nameToCharset map[string]*Charset

func init() {
	nameToCharset = make(map[string]*Charset)
	for _, cs := range []*Charset{UTF8, ISO88591} {
		nameToCharset[strings.ToUpper(cs.Name)] = cs
		for _, alias := range cs.Aliases {
			nameToCharset[strings.ToUpper(alias)] = cs
		}
	}
}

// Lookup returns the character set with the given name or alias. The empty
// name selects UTF-8.
func Lookup(name string) (*Charset, error) {
	if name == "" {
		return UTF8, nil
	}
	if cs, ok := nameToCharset[strings.ToUpper(name)]; ok {
		return cs, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
}

// Encode converts content to bytes in the character set.
func (c *Charset) Encode(content string) ([]byte, error) {
	if c.enc == nil {
		if !utf8.ValidString(content) {
			return nil, fmt.Errorf("%w: invalid UTF-8", ErrUnencodable)
		}
		return []byte(content), nil
	}
	out, _, err := transform.Bytes(c.enc.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrUnencodable, c.Name, err)
	}
	return out, nil
}

// Decode converts bytes in the character set back to a UTF-8 string.
func (c *Charset) Decode(data []byte) (string, error) {
	if c.enc == nil {
		return string(data), nil
	}
	out, _, err := transform.Bytes(c.enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("charset: decoding %s: %w", c.Name, err)
	}
	return string(out), nil
}

// String returns the canonical name.
func (c *Charset) String() string {
	return c.Name
}
