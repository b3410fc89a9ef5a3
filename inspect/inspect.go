// Package inspect answers the questions the tree builder and the parser ask
// about the header of a part.
package inspect

import (
	"errors"
	"fmt"

	"github.com/zostay/go-mailparse/part"
	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/header/field"
	"github.com/zostay/go-mailparse/part/header/param"
)

// MediaTypeRFC822 is the media type of an enveloped message.
const MediaTypeRFC822 = "message/rfc822"

// DefaultMediaType is the media type assumed for a part without a readable
// Content-Type.
const DefaultMediaType = "text/plain"

// Errors returned by ContentType.
var (
	// ErrMissingContentType is returned when the part has no Content-Type.
	ErrMissingContentType = errors.New("part has no Content-type header")

	// ErrUnexpectedHeaderShape is returned when a header lookup comes back in
	// a shape that cannot be reduced to a single field.
	ErrUnexpectedHeaderShape = errors.New("unexpected header lookup shape")
)

// HasHeader returns true if the part has a field with the given name. A part
// without any header fields has no headers at all.
func HasHeader(p *part.Part, name string) bool {
	if p.Len() == 0 {
		return false
	}
	return p.Has(name)
}

// ContentType returns the Content-Type of the part. When the header holds
// several Content-Type fields, the first is used. A Content-Type that cannot
// be parsed strictly is returned from the lenient parse without error.
func ContentType(p *part.Part) (*param.Value, error) {
	if !HasHeader(p, header.ContentType) {
		return nil, ErrMissingContentType
	}

	var f *field.Field
	switch l := p.Lookup(header.ContentType); l.Shape {
	case header.One, header.Many:
		f = l.First()
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrUnexpectedHeaderShape, l.Shape, header.ContentType)
	}

	pv, _ := param.Parse(f.Body())
	return pv, nil
}

// IsEnvelopedEmail returns true if the part is an enveloped message, that is,
// its media type is message/rfc822.
func IsEnvelopedEmail(p *part.Part) (bool, error) {
	if !HasHeader(p, header.ContentType) {
		return false, nil
	}

	ct, err := ContentType(p)
	if err != nil {
		return false, err
	}

	return ct.MediaType() == MediaTypeRFC822, nil
}

// MediaType returns the media type of the part, or DefaultMediaType when the
// part has no Content-Type that can be read.
func MediaType(p *part.Part) string {
	ct, err := ContentType(p)
	if err != nil || ct.MediaType() == "" {
		return DefaultMediaType
	}
	return ct.MediaType()
}
