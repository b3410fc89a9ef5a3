package part

import (
	"bytes"

	"github.com/zostay/go-mailparse/part/header"
)

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely, possibly never
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

// searchForSplit finds the blank line between header and body. It returns the
// position of the first byte of the body and the line break used, or -1 when
// there is no blank line. The earliest blank line wins.
//
// For a subpart, a line break at the very start means the header is empty.
func searchForSplit(buf []byte, subpart bool) (pos int, crlf []byte) {
	if subpart {
		for _, s := range splits {
			if bytes.HasPrefix(buf, s[0:len(s)/2]) {
				return len(s) / 2, s[0 : len(s)/2]
			}
		}
	}

	pos = -1
	best := -1
	for _, s := range splits {
		testPos := bytes.Index(buf, s)
		if testPos < 0 {
			continue
		}
		if best < 0 || testPos < best {
			best = testPos
			pos = testPos + len(s)
			crlf = s[0 : len(s)/2]
		}
	}
	return pos, crlf
}

// guessBreak picks the line break for a header that has no blank line after
// it.
func guessBreak(buf []byte) header.Break {
	switch {
	case bytes.Contains(buf, []byte(header.CRLF)):
		return header.CRLF
	case bytes.Contains(buf, []byte(header.LF)):
		return header.LF
	case bytes.Contains(buf, []byte(header.CR)):
		return header.CR
	}
	return header.Meh
}

// Parse builds a Part out of raw message bytes. It splits the header from the
// body at the first blank line. If there is no blank line, the entire input is
// the header and the part has no content. Junk at the start of the header is
// skipped and reported by HeaderError.
func Parse(raw []byte) *Part {
	return parse(raw, false)
}

func parse(raw []byte, subpart bool) *Part {
	p := &Part{raw: raw}

	pos, crlf := searchForSplit(raw, subpart)
	var head []byte
	lb := header.Break(crlf)
	if pos < 0 {
		head = raw
		lb = guessBreak(raw)
	} else {
		head = raw[:pos-len(crlf)]
		p.body = raw[pos:]
		p.hasBody = true
	}

	h, err := header.Parse(head, lb)
	if h == nil {
		h = header.New(lb)
	}
	p.Header = h
	p.headerErr = err

	return p
}
