// Package param parses parameterized header field values, such as are used in
// the Content-Type and Content-Disposition headers.
package param

import (
	"fmt"
	"mime"
	"sort"
	"strings"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-Type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in
	// the Content-Type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be present in the
	// Content-Disposition header.
	Filename = "filename"
)

// Value is a parsed parameterized header field. A Value is immutable.
type Value struct {
	v  string
	ps map[string]string
}

// Parse parses a header field body as a Value using mime.ParseMediaType.
//
// When that fails, Parse does not give up on the field. It returns a Value
// parsed leniently along with the error: the primary value is the text before
// the first semicolon, lower-cased and trimmed, and every later
// semicolon-separated piece of the form k=v becomes a parameter. A caller that
// only needs a best guess may ignore the error.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return parseLenient(v), fmt.Errorf("parameterized value %q: %w", v, err)
	}

	return &Value{mt, ps}, nil
}

func parseLenient(v string) *Value {
	pieces := strings.Split(v, ";")
	pv := &Value{
		v:  strings.ToLower(strings.TrimSpace(pieces[0])),
		ps: make(map[string]string, len(pieces)-1),
	}

	for _, piece := range pieces[1:] {
		k, val, found := strings.Cut(piece, "=")
		if !found {
			continue
		}

		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}

		val = strings.TrimSpace(val)
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}

		if _, exists := pv.ps[k]; !exists {
			pv.ps[k] = val
		}
	}

	return pv
}

// New creates a Value with the given parameters. A nil map is the same as no
// parameters.
func New(v string, ps map[string]string) *Value {
	if ps == nil {
		ps = map[string]string{}
	}
	return &Value{v, ps}
}

// Value returns the primary value, the text before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value. It returns the Content-Type value, e.g.,
// "text/html" or "multipart/mixed".
func (pv *Value) MediaType() string {
	return pv.v
}

// Disposition is a synonym for Value. It returns the Content-Disposition,
// usually "inline" or "attachment".
func (pv *Value) Disposition() string {
	return pv.v
}

// Type returns the part of the MediaType before the slash or an empty string
// if there is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the MediaType after the slash or an empty string
// if there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameters as a map. Do not modify it.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the named parameter.
func (pv *Value) Parameter(k string) string {
	return pv.ps[strings.ToLower(k)]
}

// HasParameter returns true if the named parameter is set.
func (pv *Value) HasParameter(k string) bool {
	_, has := pv.ps[strings.ToLower(k)]
	return has
}

// Charset returns the value of the "charset" parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the value of the "boundary" parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// Filename returns the value of the "filename" parameter.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// String returns the primary value followed by the parameters sorted by name.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	parts := make([]string, len(pv.ps)+1)
	parts[0] = pv.v

	for n, k := range pks {
		parts[n+1] = fmt.Sprintf("%s=%s", k, pv.ps[k])
	}

	return strings.Join(parts, "; ")
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	c := Value{v: pv.v, ps: make(map[string]string, len(pv.ps))}
	for k, v := range pv.ps {
		c.ps[k] = v
	}
	return &c
}
