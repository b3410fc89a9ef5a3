package mailparse

import (
	"fmt"

	"github.com/zostay/go-mailparse/inspect"
)

// ErrUnexpectedHeaderShape is the only error Parse returns. It means the header
// layer answered a lookup in a shape it was never supposed to.
var ErrUnexpectedHeaderShape = inspect.ErrUnexpectedHeaderShape

// CharsetConversionError is returned when the body of a part cannot be
// converted from its charset into UTF-8. It carries the content as it was
// before the conversion was attempted, after transfer decoding.
type CharsetConversionError struct {
	Charset string
	Content []byte
	Err     error
}

// Error returns the error message.
func (err *CharsetConversionError) Error() string {
	return fmt.Sprintf("unable to convert content from charset %q: %v", err.Charset, err.Err)
}

// Unwrap returns the underlying conversion error.
func (err *CharsetConversionError) Unwrap() error {
	return err.Err
}
