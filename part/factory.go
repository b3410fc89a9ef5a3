package part

// Factory makes parts out of raw bytes. The parser calls the factory for the
// top-level message, again for a message repaired by adding a missing closing
// boundary, and for every enveloped message/rfc822 body.
type Factory interface {
	MakePart(raw []byte) *Part
}

// FactoryFunc adapts a function into a Factory.
type FactoryFunc func(raw []byte) *Part

// MakePart calls f.
func (f FactoryFunc) MakePart(raw []byte) *Part {
	return f(raw)
}

// DefaultFactory makes parts with Parse.
var DefaultFactory Factory = FactoryFunc(Parse)
