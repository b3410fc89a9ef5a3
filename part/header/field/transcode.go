package field

import (
	"mime"
	"strings"

	"github.com/zostay/go-mailparse/part/charset"
)

var wordDecoder = &mime.WordDecoder{
	CharsetReader: charset.Reader,
}

// Decode looks for MIME encoded-words in a field body and decodes them into
// UTF-8.
func Decode(body string) (string, error) {
	if strings.Contains(body, "=?") {
		return wordDecoder.DecodeHeader(body)
	}

	return body, nil
}
