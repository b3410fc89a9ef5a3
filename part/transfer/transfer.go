// Package transfer decodes the Content-Transfer-Encodings used in email
// message bodies.
package transfer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/quotedprintable"
	"strings"

	"github.com/zostay/go-mailparse/part/header"
)

const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes are decoded from quoted-printable
	Base64          = "base64"           // bytes are decoded from base64
)

// Decoder turns transfer encoded bytes back into binary data. When decoding
// fails, a Decoder returns the best result it has along with the error.
type Decoder func([]byte) ([]byte, error)

// Decoders maps the supported Content-Transfer-Encodings onto their decoders.
// Any encoding not listed is treated as-is.
var Decoders = map[string]Decoder{
	None:            DecodeAsIs,
	Bit7:            DecodeAsIs,
	Bit8:            DecodeAsIs,
	Binary:          DecodeAsIs,
	QuotedPrintable: DecodeQuotedPrintable,
	Base64:          DecodeBase64,
}

// Decode decodes b according to the named transfer encoding. The name is
// matched after trimming and lower-casing it. Unknown encodings are treated
// as-is.
func Decode(cte string, b []byte) ([]byte, error) {
	dec, known := Decoders[strings.ToLower(strings.TrimSpace(cte))]
	if !known {
		return b, nil
	}
	return dec(b)
}

// DecodeBody decodes the body of a part using the Content-Transfer-Encoding
// of its header. Multipart bodies are never transfer decoded and are returned
// as-is, as is any body without a readable encoding.
func DecodeBody(h *header.Header, b []byte) ([]byte, error) {
	if ct, _ := h.GetContentType(); ct != nil && ct.Type() == "multipart" {
		return b, nil
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return b, nil
	}

	return Decode(cte, b)
}

// DecodeAsIs returns the bytes unchanged.
func DecodeAsIs(b []byte) ([]byte, error) {
	return b, nil
}

func isBase64(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '+' || c == '/'
}

// DecodeBase64 decodes base64 leniently. Every byte outside the base64
// alphabet is ignored, which takes care of line breaks, padding and stray
// junk, and a dangling final character is dropped.
func DecodeBase64(b []byte) ([]byte, error) {
	clean := make([]byte, 0, len(b))
	for _, c := range b {
		if isBase64(c) {
			clean = append(clean, c)
		}
	}

	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}

	out := make([]byte, base64.RawStdEncoding.DecodedLen(len(clean)))
	n, err := base64.RawStdEncoding.Decode(out, clean)
	if err != nil {
		return out[:n], fmt.Errorf("base64 transfer encoding: %w", err)
	}

	return out[:n], nil
}

// DecodeQuotedPrintable decodes quoted-printable data. On a malformed
// sequence, the original bytes are returned with the error.
func DecodeQuotedPrintable(b []byte) ([]byte, error) {
	out, err := io.ReadAll(quotedprintable.NewReader(bytes.NewReader(b)))
	if err != nil {
		return b, fmt.Errorf("quoted-printable transfer encoding: %w", err)
	}
	return out, nil
}
