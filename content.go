package mailparse

import (
	"errors"
	"strings"

	"github.com/zostay/go-mailparse/inspect"
	"github.com/zostay/go-mailparse/part"
	"github.com/zostay/go-mailparse/part/charset"
	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/transfer"
)

// Media types of the parts that make up the primary content.
const (
	MediaTypeText = "text/plain"
	MediaTypeHTML = "text/html"
)

// Glue returns the text placed between two parts of the given media type when
// PrimaryContent joins them. It is only called between parts, never before
// the first or after the last.
type Glue func(mediaType string) string

// NoGlue joins parts with nothing in between.
func NoGlue(string) string { return "" }

// PrimaryContent returns the content a person would read: every text/html
// part joined with glue, or, if there are none, every text/plain part joined
// with glue. A nil glue is NoGlue. When the root is multipart every part is a
// candidate, otherwise only the root is.
//
// It returns false when there is no text or html content, as happens with a
// message holding only an attachment or a message without a header. When the
// content of any candidate cannot be converted to UTF-8, that part is recorded
// in ProblematicParts and an empty string is returned with true. Every call
// starts a new list of problematic parts. Only content checked as auto, that
// is content with no charset or one we do not know, can fail this way. Bytes
// that do not fit a declared charset are replaced with U+FFFD.
func (m *Parsed) PrimaryContent(glue Glue) (string, bool) {
	if glue == nil {
		glue = NoGlue
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.problematic = nil

	candidates := []*part.Part{m.root}
	if m.root.IsMultipart() {
		candidates = m.parts
	}

	var text, html []string
	for _, p := range candidates {
		if p.Len() == 0 {
			continue
		}

		mt := inspect.MediaType(p)
		if mt != MediaTypeText && mt != MediaTypeHTML {
			continue
		}

		content, err := m.decodeBody(p)
		var ccErr *CharsetConversionError
		if errors.As(err, &ccErr) {
			m.logger.Warn("unable to convert part content to UTF-8",
				"media-type", mt, "charset", ccErr.Charset, "error", ccErr.Err)
			m.problematic = append(m.problematic, p)
			return "", true
		}

		if mt == MediaTypeHTML {
			html = append(html, content)
		} else {
			text = append(text, content)
		}
	}

	switch {
	case len(html) > 0:
		return strings.Join(html, glue(MediaTypeHTML)), true
	case len(text) > 0:
		return strings.Join(text, glue(MediaTypeText)), true
	}

	return "", false
}

// decodeBody transfer decodes the body of the part and converts it to UTF-8.
// The charset is taken from the Content-Type only when it is a charset we
// know. Otherwise, the content must already be UTF-8.
func (m *Parsed) decodeBody(p *part.Part) (string, error) {
	cte := transfer.Bit7
	if inspect.HasHeader(p, header.ContentTransferEncoding) {
		if v, err := p.GetTransferEncoding(); err == nil {
			cte = v
		}
	}

	cs := charset.Auto
	if inspect.HasHeader(p, header.ContentType) {
		if ct, err := inspect.ContentType(p); err == nil && ct.Charset() != "" && charset.Known(ct.Charset()) {
			cs = ct.Charset()
		}
	}

	raw, err := p.Content()
	if err != nil {
		raw = []byte{}
	}

	content, err := transfer.Decode(cte, raw)
	if err != nil {
		m.logger.Debug("transfer decoding failed, using what could be decoded",
			"transfer-encoding", cte, "error", err)
	}

	s, err := charset.Decode(cs, content)
	if err != nil {
		return "", &CharsetConversionError{Charset: cs, Content: content, Err: err}
	}

	return strings.Trim(s, spaceSet), nil
}
