package header

import (
	"errors"

	"github.com/zostay/go-mailparse/part/header/field"
)

// Parse parses the given bytes into a header using the given line break. The
// entire input is treated as the header.
//
// Junk before the first field is reported with a *field.BadStartError. That
// error is recoverable and the returned header is usable.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	return New(lb, fields...), finalErr
}

// New builds a header from fields that have already been parsed.
func New(lb Break, fields ...*field.Field) *Header {
	return &Header{
		Base: Base{
			lbr:    lb,
			fields: fields,
		},
	}
}
