// Package field holds the individual header fields of a message part. Fields
// are read-only: they keep the raw bytes exactly as they were found in the
// input along with the unfolded and decoded name and body.
package field

// Field is a single header field of a part.
type Field struct {
	Base
	raw *Raw
}

// New builds a field with no raw form from a name and a decoded body.
func New(name, body string) *Field {
	return &Field{Base: Base{name, body}}
}

// Raw returns the field as it appeared in the input or nil if the field was
// not parsed.
func (f *Field) Raw() *Raw {
	return f.raw
}

// Base holds the unfolded name and decoded body of a header field.
type Base struct {
	name string
	body string
}

// Name returns the name of the header field.
func (f *Base) Name() string {
	return f.name
}

// Body returns the unfolded value of the header field with MIME encoded-words
// decoded into UTF-8.
func (f *Base) Body() string {
	return f.body
}

// String returns the field as "Name: body".
func (f *Base) String() string {
	return f.name + ": " + f.body
}

// Raw is the unparsed form of a field. Objects of this type are immutable.
type Raw struct {
	field []byte // complete raw field, line break trimmed
	colon int    // the index of the colon
}

// Bytes returns the raw field.
func (f *Raw) Bytes() []byte {
	return f.field
}

// String returns the raw field as a string.
func (f *Raw) String() string {
	return string(f.field)
}

// Name returns the name part of the raw field. The value returned may be
// folded.
func (f *Raw) Name() string {
	return string(f.field[:f.colon])
}

// Body returns the body part of the raw field. The value returned may be
// folded.
func (f *Raw) Body() string {
	off := 1
	if f.colon == len(f.field) {
		off = 0
	}
	return string(f.field[f.colon+off:])
}
