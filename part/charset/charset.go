// Package charset resolves the character set names found in email messages
// and converts text written in those character sets into UTF-8. It loads all
// the encodings provided with golang.org/x/text, which makes binaries
// considerably larger. But it also gives the parser the ability to decode
// pretty much any character set it might encounter in the wild wild world of
// email.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Names with special handling. These are given in their normalized form.
const (
	// Auto is the pseudo-charset used when a part declares no charset (or a
	// charset nobody has heard of). Content is accepted if it is valid UTF-8
	// (which includes plain ASCII) and rejected otherwise.
	Auto = "auto"

	utf8Name  = "utf8"
	asciiName = "usascii"
)

// Errors returned by Decode.
var (
	// ErrUnknownCharset is returned when the named charset cannot be resolved to
	// an encoding.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrInvalidContent is returned when the content cannot be converted from
	// the charset into UTF-8.
	ErrInvalidContent = errors.New("content cannot be converted to UTF-8")
)

var (
	indexOnce sync.Once
	index     map[string]encoding.Encoding
)

// Normalize prepares a charset name for lookup by stripping every character
// that is not a letter or a digit and lower-casing the rest. Thus, "UTF-8",
// "utf8", and "Utf_8" all normalize to "utf8".
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, c := range name {
		if c > unicode.MaxASCII {
			continue
		}
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			b.WriteRune(unicode.ToLower(c))
		}
	}
	return b.String()
}

func allEncodings() []encoding.Encoding {
	all := make([]encoding.Encoding, 0, 64)
	all = append(all, charmap.All...)
	all = append(all, japanese.All...)
	all = append(all, korean.All...)
	all = append(all, simplifiedchinese.All...)
	all = append(all, traditionalchinese.All...)
	all = append(all, xunicode.All...)
	return all
}

// buildIndex maps every normalized name we know each encoding by onto the
// encoding.
func buildIndex() {
	index = make(map[string]encoding.Encoding, 256)
	add := func(name string, e encoding.Encoding) {
		n := Normalize(name)
		if n == "" {
			return
		}
		if _, exists := index[n]; !exists {
			index[n] = e
		}
	}

	for _, e := range allEncodings() {
		if name, err := ianaindex.MIME.Name(e); err == nil {
			add(name, e)
		}
		if name, err := ianaindex.IANA.Name(e); err == nil {
			add(name, e)
		}
		if name, err := htmlindex.Name(e); err == nil {
			add(name, e)
		}
		if s, isStringer := e.(fmt.Stringer); isStringer {
			add(s.String(), e)
		}
	}
}

// Lookup resolves the named charset to an encoding. The normalized name is
// checked against the names of every encoding loaded. If that fails, the IANA
// aliases and the WHATWG labels are consulted. It returns false if the name
// cannot be resolved.
func Lookup(name string) (encoding.Encoding, bool) {
	indexOnce.Do(buildIndex)

	n := Normalize(name)
	if n == "" {
		return nil, false
	}

	if e, found := index[n]; found {
		return e, true
	}

	if e, err := ianaindex.IANA.Encoding(name); err == nil && e != nil {
		return e, true
	}

	if e, err := htmlindex.Get(name); err == nil && e != nil {
		return e, true
	}

	return nil, false
}

// Known returns true if the named charset can be used with Decode.
func Known(name string) bool {
	switch Normalize(name) {
	case "":
		return false
	case utf8Name, asciiName, "ascii":
		return true
	}

	_, found := Lookup(name)
	return found
}

// Decode transforms the given bytes from the named charset into a UTF-8
// string.
//
// When the name is Auto, the bytes must already be valid UTF-8 or an error
// wrapping ErrInvalidContent is returned. When the name is us-ascii (or
// empty), any 8-bit byte is replaced with unicode.ReplacementChar. When the
// name is utf-8, invalid byte sequences are replaced with
// unicode.ReplacementChar. Any other name is resolved with Lookup; if that
// fails, an error wrapping ErrUnknownCharset is returned.
//
// Only Auto rejects content. Bytes that do not fit a named charset are
// replaced rather than reported, and the x/text decoders do the same.
func Decode(name string, b []byte) (string, error) {
	switch Normalize(name) {
	case Auto:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: unable to detect character encoding", ErrInvalidContent)
		}
		return string(b), nil
	case asciiName, "ascii", "":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case utf8Name:
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	}

	e, found := Lookup(name)
	if !found {
		return "", fmt.Errorf("%w %q", ErrUnknownCharset, name)
	}

	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w from %q: %v", ErrInvalidContent, name, err)
	}

	return string(out), nil
}

// Reader adapts Decode to the CharsetReader interface used by
// mime.WordDecoder.
func Reader(name string, r io.Reader) (io.Reader, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s, err := Decode(name, bs)
	if err != nil {
		return nil, err
	}

	return strings.NewReader(s), nil
}
