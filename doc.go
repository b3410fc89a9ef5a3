// Package mailparse pulls the useful bits out of raw email messages: the tree
// of parts, the enveloped message of a forward or bounce, every participant
// address and message ID, and a single primary body for people to read.
//
// Real email is frequently broken and this package is built to cope with that.
// A multipart message missing its closing boundary is repaired by adding the
// boundary and parsing again. Parts that cannot be split become leaves. Address
// fields that cannot be parsed contribute no addresses. Parsing only fails when
// the header layer breaks its own contract.
//
//	msg, err := mailparse.Parse(raw)
//	if err != nil {
//	  panic(err)
//	}
//
//	body, found := msg.PrimaryContent(nil)
//	if !found {
//	  fmt.Println("no text or html content")
//	}
//
//	if msg.HasProblematicParts() {
//	  fmt.Println("content was written in a charset we could not convert")
//	}
//
// When picking the primary content, HTML parts are preferred over plain text
// parts and the parts are joined together with the Glue given. Every other
// kind of part, such as an attachment, is skipped.
//
// The low-level grammar of messages and headers lives in the part package and
// its sub-packages. The tree package arranges parts into a tree and inspect
// holds the header questions asked along the way.
package mailparse
