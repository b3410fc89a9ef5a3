package tree

import (
	"io"
	"log/slog"

	"github.com/zostay/go-mailparse/inspect"
	"github.com/zostay/go-mailparse/part"
)

// DefaultMaxDepth is the default depth the builder will descend into a
// message.
const DefaultMaxDepth = 10

// Builder builds a Tree from a root part.
type Builder struct {
	factory  part.Factory
	maxDepth int
	logger   *slog.Logger
}

// BuildOption configures a Builder.
type BuildOption func(*Builder)

// WithMaxDepth limits how deep the builder descends. A node at the limit is
// kept as a leaf. The root is at depth 0.
func WithMaxDepth(maxDepth int) BuildOption {
	return func(b *Builder) {
		b.maxDepth = maxDepth
	}
}

// WithUnlimitedRecursion removes the depth limit.
func WithUnlimitedRecursion() BuildOption {
	return WithMaxDepth(-1)
}

// WithLogger sets the logger that recovery paths report to.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a Builder that parses enveloped messages with the given
// factory. A nil factory means part.DefaultFactory.
func NewBuilder(factory part.Factory, opts ...BuildOption) *Builder {
	if factory == nil {
		factory = part.DefaultFactory
	}

	b := &Builder{
		factory:  factory,
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return b
}

// Build builds the tree for the given root part.
//
// Problems with the structure do not stop the build. A part without header
// fields is dropped. A part whose children cannot be counted becomes a leaf.
// The only error returned is inspect.ErrUnexpectedHeaderShape.
func (b *Builder) Build(root *part.Part) (*Tree, error) {
	enveloped, err := inspect.IsEnvelopedEmail(root)
	if err != nil {
		return nil, err
	}

	n, err := b.build(root, enveloped, 0)
	if err != nil {
		return nil, err
	}

	return &Tree{root: n}, nil
}

func (b *Builder) build(p *part.Part, enveloped bool, depth int) (*Node, error) {
	n := &Node{part: p, enveloped: enveloped}

	if p.Len() == 0 {
		b.logger.Debug("part has no header fields, treating as leaf", "depth", depth)
		return n, nil
	}

	count, err := p.CountParts()
	if err != nil {
		b.logger.Debug("unable to split multipart body, treating as leaf",
			"depth", depth, "error", err)
		return n, nil
	}

	if count > 0 && b.maxDepth >= 0 && depth >= b.maxDepth {
		b.logger.Warn("maximum part depth reached, skipping children",
			"depth", depth, "parts", count)
		return n, nil
	}

	for i := 0; i < count; i++ {
		c, err := p.GetPart(i)
		if err != nil {
			b.logger.Debug("unable to fetch part", "depth", depth, "index", i, "error", err)
			continue
		}

		if c.Len() == 0 {
			continue
		}

		if c.IsMultipart() {
			cn, err := b.build(c, false, depth+1)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, cn)
			continue
		}

		isEnveloped, err := inspect.IsEnvelopedEmail(c)
		if err != nil {
			return nil, err
		}

		if isEnveloped {
			body, err := c.Content()
			if err != nil {
				b.logger.Debug("enveloped message has no content", "depth", depth, "index", i)
				body = []byte{}
			}

			ep := b.factory.MakePart(body)
			if ep.Len() == 0 {
				b.logger.Debug("enveloped message has no header fields, dropping",
					"depth", depth, "index", i)
				continue
			}

			cn, err := b.build(ep, true, depth+1)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, cn)
			continue
		}

		n.children = append(n.children, &Node{part: c})
	}

	return n, nil
}
