package mailparse

import (
	"io"
	"log/slog"
	"strings"

	"github.com/zostay/go-mailparse/inspect"
	"github.com/zostay/go-mailparse/part"
	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/header/param"
	"github.com/zostay/go-mailparse/tree"
)

// defaultAddressFields are the fields addresses are always collected from.
var defaultAddressFields = []string{"to", "from", "cc", "bcc"}

// spaceSet is the whitespace, including NUL and vertical tab, trimmed from
// decoded content, from the message before a boundary repair and from message
// ids.
const spaceSet = " \t\n\r\x00\x0b"

// Parser turns raw messages into Parsed messages. A Parser holds only its
// configuration, so it is safe for concurrent use.
type Parser struct {
	factory  part.Factory
	maxDepth int
	fields   []string
	logger   *slog.Logger
	builder  *tree.Builder
}

// New returns a Parser configured with the given options.
func New(opts ...Option) *Parser {
	pr := &Parser{
		factory:  part.DefaultFactory,
		maxDepth: tree.DefaultMaxDepth,
		fields:   append([]string{}, defaultAddressFields...),
	}

	for _, opt := range opts {
		opt(pr)
	}

	if pr.factory == nil {
		pr.factory = part.DefaultFactory
	}

	if pr.logger == nil {
		pr.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pr.builder = tree.NewBuilder(pr.factory,
		tree.WithMaxDepth(pr.maxDepth),
		tree.WithLogger(pr.logger),
	)

	return pr
}

// Parse parses raw with a Parser configured with the given options.
func Parse(raw []byte, opts ...Option) (*Parsed, error) {
	return New(opts...).Parse(raw)
}

// ParseReader reads all of r and parses it.
func (pr *Parser) ParseReader(r io.Reader) (*Parsed, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return pr.Parse(raw)
}

// Parse parses a raw message: header, blank line and body.
//
// Broken messages are parsed as well as they can be. The only error returned
// is ErrUnexpectedHeaderShape.
func (pr *Parser) Parse(raw []byte) (*Parsed, error) {
	root := pr.factory.MakePart(raw)
	root = pr.repairBoundary(root, raw)

	t, err := pr.builder.Build(root)
	if err != nil {
		return nil, err
	}

	parts := t.Flatten()

	byField := make(map[string][]string, len(pr.fields))
	for _, f := range pr.fields {
		addrs := []string{}
		for _, p := range parts {
			addrs = append(addrs, pr.addressesIn(p, f)...)
		}
		byField[f] = addrs
	}

	m := &Parsed{
		raw:      raw,
		root:     root,
		tree:     t,
		parts:    parts,
		byField:  byField,
		envelope: t.EnvelopedEmail(),
		logger:   pr.logger,
	}

	m.logging = append(m.AllEmailAddresses(pr.fields...), messageIDs(root)...)

	return m, nil
}

// repairBoundary parses the message again with a closing boundary added to the
// end when the children of the root cannot be counted.
func (pr *Parser) repairBoundary(p *part.Part, raw []byte) *part.Part {
	_, countErr := p.CountParts()
	if countErr == nil {
		return p
	}

	if !inspect.HasHeader(p, header.ContentType) {
		return p
	}

	ct, err := inspect.ContentType(p)
	if err != nil || !ct.HasParameter(param.Boundary) {
		pr.logger.Debug("unable to repair multipart message without a boundary",
			"error", countErr)
		return p
	}

	trimmed := strings.Trim(string(raw), spaceSet)
	repaired := []byte(trimmed + "\n--" + ct.Boundary() + "--")

	pr.logger.Debug("repairing multipart message with missing final boundary",
		"boundary", ct.Boundary(), "error", countErr)

	return pr.factory.MakePart(repaired)
}

// addressesIn returns lower-cased addresses from every instance of the field in
// the part. A malformed field adds none.
func (pr *Parser) addressesIn(p *part.Part, field string) []string {
	if !inspect.HasHeader(p, field) {
		return nil
	}

	als, err := p.GetAllAddressLists(field)
	if err != nil {
		pr.logger.Debug("skipping malformed address field", "field", field, "error", err)
	}

	addrs := make([]string, 0, len(als))
	for _, al := range als {
		addrs = append(addrs, header.Emails(al)...)
	}

	return addrs
}

// messageIDs returns the bodies of the Message-Id fields of the part trimmed
// of space and angle brackets.
func messageIDs(p *part.Part) []string {
	bs, err := p.GetMessageID()
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(bs))
	for _, b := range bs {
		ids = append(ids, strings.Trim(b, spaceSet+"<>"))
	}
	return ids
}
