package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line is the unparsed content of one complete header field, including any
// folded continuation lines.
type Line []byte

// Lines is zero or more unparsed header field lines.
type Lines []Line

// ParseLines splits a header block into field lines. A new field starts on any
// line that does not begin with a space or tab and contains a colon. Every
// other line continues the field before it.
//
// Lines at the very start that look like continuations are skipped and
// reported in a *BadStartError. The Lines returned are still usable in that
// case.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80+1)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{append([]byte{}, line...)}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, Line(append([]byte{}, line...)))
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Parse builds a field from a single field line. The name and body are
// unfolded, the body is trimmed of surrounding space, and encoded-words in the
// body are decoded. A body whose encoded-words cannot be decoded is kept as it
// was found.
func Parse(f Line, lb []byte) *Field {
	rawField := bytes.TrimRight(f, string(lb))

	off := 1
	ix := bytes.IndexByte(rawField, ':')
	if ix < 0 {
		ix = len(rawField)
		off = 0
	}

	name := string(bytes.TrimSpace(Unfold(rawField[:ix])))
	body := string(bytes.TrimSpace(Unfold(rawField[ix+off:])))
	if decBody, err := Decode(body); err == nil {
		body = decBody
	}

	return &Field{
		Base: Base{name, body},
		raw:  &Raw{rawField, ix},
	}
}

// Unfold removes the line breaks from a folded field, leaving the indenting
// whitespace of each continuation line in place.
func Unfold(f []byte) []byte {
	uf := make([]byte, 0, len(f))
	for _, b := range f {
		if b != '\r' && b != '\n' {
			uf = append(uf, b)
		}
	}
	return uf
}
