package mailparse

import (
	"log/slog"
	"strings"

	"github.com/zostay/go-mailparse/part"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFactory replaces the factory used to make parts. The factory is called
// for the message, for the message again after a boundary repair, and for
// every enveloped message.
func WithFactory(factory part.Factory) Option {
	return func(pr *Parser) {
		pr.factory = factory
	}
}

// WithMaxDepth sets how many levels deep the parser descends into nested
// parts. The default is tree.DefaultMaxDepth.
func WithMaxDepth(maxDepth int) Option {
	return func(pr *Parser) {
		pr.maxDepth = maxDepth
	}
}

// WithUnlimitedRecursion lets the parser descend into nested parts however
// deep they go.
func WithUnlimitedRecursion() Option {
	return WithMaxDepth(-1)
}

// WithAddressFields adds fields to the To, From, Cc and Bcc fields that
// addresses are collected from. Names are case-insensitive.
func WithAddressFields(fields ...string) Option {
	return func(pr *Parser) {
		for _, f := range fields {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" || containsString(pr.fields, f) {
				continue
			}
			pr.fields = append(pr.fields, f)
		}
	}
}

// WithLogger sets the logger that the parser reports recovered problems to.
// By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(pr *Parser) {
		pr.logger = logger
	}
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
