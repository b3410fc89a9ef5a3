package header

import (
	"strings"

	"github.com/zostay/go-mailparse/part/header/field"
)

// Base is the low-level storage of header fields. Field names are matched
// case-insensitively and field order is preserved.
type Base struct {
	lbr    Break
	fields []*field.Field
}

// Break returns the line break the header was parsed with.
func (h *Base) Break() Break {
	return h.lbr
}

// Len returns the number of fields in the header.
func (h *Base) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if n is out of range.
func (h *Base) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetIndexesNamed returns the indexes of the fields with the given name.
func (h *Base) GetIndexesNamed(name string) []int {
	is := make([]int, 0, 2)
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// GetAllFieldsNamed returns all the fields with the given name in the order
// they appear in the header.
func (h *Base) GetAllFieldsNamed(name string) []*field.Field {
	fs := make([]*field.Field, 0, 2)
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// ListFields returns a copy of the list of fields in the header.
func (h *Base) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}
