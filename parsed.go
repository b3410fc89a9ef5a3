package mailparse

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/zostay/go-mailparse/part"
	"github.com/zostay/go-mailparse/tree"
)

// Parsed is a parsed message. Everything but the list of problematic parts is
// fixed when the message is parsed. That list is rebuilt by every call to
// PrimaryContent and is guarded by a mutex, so a Parsed is safe to share
// between goroutines.
type Parsed struct {
	raw      []byte
	root     *part.Part
	tree     *tree.Tree
	parts    []*part.Part
	byField  map[string][]string
	logging  []string
	envelope *part.Part
	logger   *slog.Logger

	mu          sync.Mutex
	problematic []*part.Part
}

// Raw returns the bytes that were parsed.
func (m *Parsed) Raw() []byte {
	return m.raw
}

// Root returns the top-level part. If the message was repaired, this is the
// repaired message.
func (m *Parsed) Root() *part.Part {
	return m.root
}

// Tree returns the tree of parts.
func (m *Parsed) Tree() *tree.Tree {
	return m.tree
}

// Parts returns every part of the message in depth-first order, starting with
// the root. The parts of an enveloped message are included.
func (m *Parsed) Parts() []*part.Part {
	return append([]*part.Part{}, m.parts...)
}

// AddressesByField returns the addresses collected from the named field of
// every part, in order, duplicates included.
func (m *Parsed) AddressesByField(field string) []string {
	return append([]string{}, m.byField[strings.ToLower(field)]...)
}

// AllEmailAddresses returns the addresses found in the named fields of every
// part, in order, with duplicates removed. With no fields named, the To,
// From, Cc and Bcc fields are used. A field that addresses were not collected
// from adds nothing.
func (m *Parsed) AllEmailAddresses(fields ...string) []string {
	if len(fields) == 0 {
		fields = defaultAddressFields
	}

	seen := make(map[string]struct{})
	addrs := make([]string, 0, 8)
	for _, f := range fields {
		for _, a := range m.byField[strings.ToLower(f)] {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			addrs = append(addrs, a)
		}
	}

	return addrs
}

// LoggingEmails returns every address followed by the message IDs of the
// root part. This is mostly useful for logging.
func (m *Parsed) LoggingEmails() []string {
	return append([]string{}, m.logging...)
}

// EnvelopedEmail returns the enveloped message found directly under the root
// or nil.
func (m *Parsed) EnvelopedEmail() *part.Part {
	return m.envelope
}

// HasEnvelopedEmail returns true if an enveloped message was found.
func (m *Parsed) HasEnvelopedEmail() bool {
	return m.envelope != nil
}

// Subject returns the decoded subject of the message or an empty string.
func (m *Parsed) Subject() string {
	s, _ := m.root.GetSubject()
	return s
}

// Date returns the date of the message.
func (m *Parsed) Date() (time.Time, error) {
	return m.root.GetDate()
}

// ProblematicParts returns the parts whose content could not be converted to
// UTF-8 during the last call to PrimaryContent.
func (m *Parsed) ProblematicParts() []*part.Part {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*part.Part{}, m.problematic...)
}

// HasProblematicParts returns true if ProblematicParts is not empty.
func (m *Parsed) HasProblematicParts() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.problematic) > 0
}
