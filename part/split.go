package part

import (
	"bytes"
	"fmt"
)

// checkBound reports whether line is a boundary delimiter line and whether it
// is the closing delimiter. Space after the delimiter is tolerated.
func checkBound(line, bound []byte) (match, finish bool) {
	if !bytes.HasPrefix(line, bound) {
		return false, false
	}
	line = line[len(bound):]
	if bytes.HasPrefix(line, []byte("--")) {
		return true, true
	}
	if len(line) == 0 {
		return true, false
	}
	switch line[0] {
	case ' ', '\t', '\r', '\n':
		return true, false
	}
	return false, false
}

// trimBreak removes one line break from the end of b. The break before a
// delimiter line belongs to the delimiter.
func trimBreak(b []byte) []byte {
	switch {
	case bytes.HasSuffix(b, []byte("\r\n")):
		return b[:len(b)-2]
	case bytes.HasSuffix(b, []byte("\n")), bytes.HasSuffix(b, []byte("\r")):
		return b[:len(b)-1]
	}
	return b
}

// split divides a multipart body into its parts. It runs at most once per
// Part.
func (p *Part) split() {
	if !p.IsMultipart() || !p.hasBody {
		return
	}

	boundary := p.contentType().Boundary()
	if boundary == "" {
		p.splitErr = ErrNoBoundary
		return
	}

	bound := []byte("--" + boundary)
	sep := []byte("\n")
	if p.Break() == "\r" {
		sep = []byte("\r")
	}

	var (
		opened, closed bool
		partStart      int
		offset         int
	)

	for _, line := range bytes.SplitAfter(p.body, sep) {
		lineStart := offset
		offset += len(line)

		match, finish := checkBound(line, bound)
		if !match {
			continue
		}

		switch {
		case !opened && finish:
			// a closing delimiter with nothing opened holds no parts
			p.prefix = p.body[:lineStart]
			p.suffix = p.body[offset:]
			return
		case !opened:
			opened = true
			p.prefix = p.body[:lineStart]
		default:
			p.parts = append(p.parts, parse(trimBreak(p.body[partStart:lineStart]), true))
		}

		partStart = offset
		if finish {
			closed = true
			p.suffix = p.body[offset:]
			break
		}
	}

	if opened && !closed {
		p.parts = nil
		p.splitErr = fmt.Errorf("%w: expected %q", ErrMissingFinalBoundary, string(bound)+"--")
	}
}
