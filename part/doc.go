// Package part is the structural layer of the parser. It turns raw message
// bytes into a Part: a header, the raw body, and the children of a multipart
// body, which are split out of the body the first time they are asked for.
//
// Parsing a Part never fails. A message that is not strictly correct still
// produces a Part, and problems with the multipart structure are reported
// when the children are counted:
//
//	p := part.Parse(raw)
//	n, err := p.CountParts()
//	if errors.Is(err, part.ErrMissingFinalBoundary) {
//	  // the closing --boundary-- line never showed up
//	}
//
// Parts are not transfer decoded. Content returns the body exactly as it was
// found in the input. See the transfer package for decoding.
package part
