package part

import (
	"errors"
	"strings"
	"sync"

	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/header/param"
)

// Errors returned by Part methods.
var (
	// ErrNoBoundary is returned by CountParts when a multipart part has no
	// boundary parameter on its Content-Type field.
	ErrNoBoundary = errors.New("the boundary parameter is missing from Content-type")

	// ErrMissingFinalBoundary is returned by CountParts when the body of a
	// multipart part opens with a boundary delimiter but the closing
	// delimiter never appears.
	ErrMissingFinalBoundary = errors.New("the final boundary of the multipart body is missing")

	// ErrPartIndex is returned by GetPart when the index is out of range.
	ErrPartIndex = errors.New("part index out of range")

	// ErrNoContent is returned by Content when the input had no body.
	ErrNoContent = errors.New("part has no content")
)

// Part is one node of a parsed message: the top-level message itself or one
// of the parts of a multipart body. The header is embedded, so the header
// getters may be called on the Part directly.
//
// A Part is immutable once parsed. It is safe to use from many goroutines.
type Part struct {
	*header.Header

	raw       []byte
	body      []byte
	hasBody   bool
	headerErr error

	once     sync.Once
	parts    []*Part
	prefix   []byte
	suffix   []byte
	splitErr error
}

// Raw returns the bytes the part was parsed from.
func (p *Part) Raw() []byte {
	return p.raw
}

// HeaderError returns the recoverable error found while parsing the header,
// such as a *field.BadStartError, or nil.
func (p *Part) HeaderError() error {
	return p.headerErr
}

// contentType returns the first Content-Type field parsed, leniently if need
// be, or nil if there is no Content-Type.
func (p *Part) contentType() *param.Value {
	l := p.Lookup(header.ContentType)
	if l.Shape == header.None {
		return nil
	}

	pv, _ := param.Parse(l.First().Body())
	return pv
}

// IsMultipart returns true if the media type of the part starts with
// "multipart/".
func (p *Part) IsMultipart() bool {
	ct := p.contentType()
	return ct != nil && strings.HasPrefix(ct.MediaType(), "multipart/")
}

// Content returns the raw body of the part, still transfer encoded. It
// returns ErrNoContent if the input had no header/body separator.
func (p *Part) Content() ([]byte, error) {
	if !p.hasBody {
		return nil, ErrNoContent
	}
	return p.body, nil
}

// CountParts returns the number of children of a multipart part. It returns
// zero for any other part.
//
// A multipart body without an opening delimiter has zero children and is not
// an error. ErrNoBoundary is returned when the Content-Type has no boundary
// and ErrMissingFinalBoundary when the body has an opening delimiter but no
// closing one.
func (p *Part) CountParts() (int, error) {
	p.once.Do(p.split)
	if p.splitErr != nil {
		return 0, p.splitErr
	}
	return len(p.parts), nil
}

// GetPart returns the ith child, counting from zero. If the children could not
// be split out of the body, the error from CountParts is returned. An index
// out of range returns ErrPartIndex.
func (p *Part) GetPart(i int) (*Part, error) {
	n, err := p.CountParts()
	if err != nil {
		return nil, err
	}

	if i < 0 || i >= n {
		return nil, ErrPartIndex
	}

	return p.parts[i], nil
}

// Prefix returns the preamble before the first delimiter of a multipart body
// or nil if there is no opening delimiter.
func (p *Part) Prefix() []byte {
	p.once.Do(p.split)
	return p.prefix
}

// Suffix returns the epilogue after the closing delimiter of a multipart body
// or nil if there is no closing delimiter.
func (p *Part) Suffix() []byte {
	p.once.Do(p.split)
	return p.suffix
}
