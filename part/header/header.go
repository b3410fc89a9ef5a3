// Package header provides read access to the header of a message part: field
// lookup by name, the tagged Lookup result, and helpers to read the fields
// with structure, such as Content-Type, address lists and dates.
package header

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-mailparse/part/header/field"
	"github.com/zostay/go-mailparse/part/header/param"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned by Header methods when the
	// operation being performed failed because the header exists, but a
	// sub-field of the header does not exist.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrMalformedAddressList is returned when a field body cannot be parsed
	// as an address list.
	ErrMalformedAddressList = errors.New("malformed address list")
)

// These are standard headers defined in RFC 5322 and RFC 2045.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-disposition"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-reply-to"
	MessageID               = "Message-id"
	References              = "References"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// UnixDateWithEarlyYear is a date format seen in the wild that the usual
// parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Shape describes how many fields a Lookup found.
type Shape int

// The possible shapes of a Lookup.
const (
	None Shape = iota // no field with the name
	One               // exactly one field
	Many              // two or more fields
)

// String returns the name of the shape.
func (s Shape) String() string {
	switch s {
	case None:
		return "none"
	case One:
		return "one"
	case Many:
		return "many"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Lookup is the result of looking up a field by name. Fields holds the
// matching fields in header order.
type Lookup struct {
	Shape  Shape
	Fields []*field.Field
}

// First returns the first field found or nil when the shape is None.
func (l Lookup) First() *field.Field {
	if len(l.Fields) == 0 {
		return nil
	}
	return l.Fields[0]
}

// Header is the parsed header of a part. It is read-only after parsing, so it
// is safe to read from many goroutines.
//
// The getter methods return ErrNoSuchField if the field being fetched is not
// present.
type Header struct {
	Base
}

// Lookup returns every field with the given name tagged with the shape of the
// result.
func (h *Header) Lookup(name string) Lookup {
	fs := h.GetAllFieldsNamed(name)
	switch len(fs) {
	case 0:
		return Lookup{Shape: None}
	case 1:
		return Lookup{Shape: One, Fields: fs}
	default:
		return Lookup{Shape: Many, Fields: fs}
	}
}

// Has returns true if at least one field with the given name is present.
func (h *Header) Has(name string) bool {
	return len(h.GetIndexesNamed(name)) > 0
}

// Get retrieves the body of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple headers for the given named field,
// it will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll returns the bodies of every field with the given name. It returns nil
// with ErrNoSuchField if there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}

	return bs, nil
}

// first returns the body of the first field with the name, ignoring any that
// follow.
func (h *Header) first(name string) (string, error) {
	b, err := h.Get(name)
	if errors.Is(err, ErrManyFields) {
		return b, nil
	}
	return b, err
}

// GetParamValue parses the named field as a param.Value.
//
// This returns nil with ErrNoSuchField if no field with the name is present
// and ErrManyFields if there is more than one. If the body cannot be parsed
// strictly, the lenient parse from param.Parse is returned along with the
// parse error.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	return param.Parse(body)
}

// GetContentType returns the Content-Type field as a param.Value. See
// GetParamValue for the errors returned.
func (h *Header) GetContentType() (*param.Value, error) {
	return h.GetParamValue(ContentType)
}

// GetMediaType returns the media type of the Content-Type field.
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if pv == nil {
		return "", err
	}
	return pv.MediaType(), err
}

// getParam returns the named parameter from the Content-Type and
// ErrNoSuchFieldParameter if it is not set. A parameter found by the lenient
// parse is returned together with the parse error.
func (h *Header) getParam(name string) (string, error) {
	pv, err := h.GetContentType()
	if pv == nil {
		return "", err
	}

	if !pv.HasParameter(name) {
		return "", ErrNoSuchFieldParameter
	}

	return pv.Parameter(name), err
}

// GetCharset returns the charset parameter of the Content-Type field.
func (h *Header) GetCharset() (string, error) {
	return h.getParam(param.Charset)
}

// GetBoundary returns the boundary parameter of the Content-Type field.
func (h *Header) GetBoundary() (string, error) {
	return h.getParam(param.Boundary)
}

// GetTransferEncoding returns the body of the first
// Content-Transfer-Encoding field trimmed and lower-cased.
func (h *Header) GetTransferEncoding() (string, error) {
	b, err := h.first(ContentTransferEncoding)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(b)), nil
}

// GetSubject returns the decoded subject. Only the first Subject field is
// considered.
func (h *Header) GetSubject() (string, error) {
	return h.first(Subject)
}

// GetMessageID returns the body of every Message-Id field.
func (h *Header) GetMessageID() ([]string, error) {
	return h.GetAll(MessageID)
}

// ParseAddressList parses a field body strictly as an address list. If it
// cannot be parsed, the error wraps ErrMalformedAddressList.
//
// The body should be the one found in the raw field, before encoded-words are
// decoded. A decoded display name may hold a comma or an angle bracket that no
// longer parses.
func ParseAddressList(body string) (al addr.AddressList, err error) {
	// go-addr panics on some valid groups
	defer func() {
		if r := recover(); r != nil {
			al = nil
			err = fmt.Errorf("%w: %v", ErrMalformedAddressList, r)
		}
	}()

	al, err = addr.ParseEmailAddressList(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAddressList, err)
	}
	return al, nil
}

// addressBody returns the unfolded body of the field without decoding any
// encoded-words. A field with no raw form returns its decoded body.
func addressBody(f *field.Field) string {
	raw := f.Raw()
	if raw == nil {
		return f.Body()
	}
	return strings.TrimSpace(string(field.Unfold([]byte(raw.Body()))))
}

// GetAddressList parses the named field as an address list. It returns
// ErrNoSuchField if the field is missing and ErrManyFields if there are
// several. A body that cannot be parsed returns an error wrapping
// ErrMalformedAddressList.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	fs := h.GetAllFieldsNamed(name)
	switch len(fs) {
	case 0:
		return nil, ErrNoSuchField
	case 1:
		return ParseAddressList(addressBody(fs[0]))
	default:
		return nil, ErrManyFields
	}
}

// GetAllAddressLists parses every field with the given name as an address
// list. Each element of the returned slice matches the field at the same
// position. An element is nil when its field could not be parsed, and in
// that case the error returned wraps ErrMalformedAddressList for the first
// such field. The slice is returned either way.
func (h *Header) GetAllAddressLists(name string) ([]addr.AddressList, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	var firstErr error
	als := make([]addr.AddressList, len(fs))
	for i, f := range fs {
		al, err := ParseAddressList(addressBody(f))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s field %d: %w", name, i, err)
		}
		als[i] = al
	}

	return als, firstErr
}

// Emails returns the addr-spec of every mailbox in the list, including the
// members of groups, trimmed and lower-cased. Empty addresses are skipped.
func Emails(al addr.AddressList) []string {
	emails := make([]string, 0, len(al))
	add := func(a string) {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			emails = append(emails, a)
		}
	}

	for _, a := range al {
		switch v := a.(type) {
		case *addr.Group:
			for _, mb := range v.MailboxList() {
				add(mb.Address())
			}
		default:
			add(a.Address())
		}
	}

	return emails
}

// ParseTime parses a date written in the format of RFC 5322, falling back on
// the many formats understood by dateparse.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime parses the named field as a date. See ParseTime.
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if err != nil {
		return time.Time{}, err
	}

	return ParseTime(body)
}

// GetDate parses the Date field.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}
