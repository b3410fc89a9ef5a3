package header

// Break is the line break used by a part.
type Break string

// The line breaks that may be detected at the end of a header.
const (
	Meh  Break = ""         // no header/body separator was found
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - Commodores/old Macs linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes. A Meh break returns LF, which is
// what field splitting falls back to when no separator was detected.
func (b Break) Bytes() []byte {
	if b == Meh {
		return []byte(LF)
	}
	return []byte(b)
}
