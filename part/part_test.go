package part_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/part"
	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/header/field"
)

const multipartMessage = "Subject: test\r\n" +
	"Content-Type: multipart/alternative; boundary=\"b1\"\r\n" +
	"\r\n" +
	"This is the preamble.\r\n" +
	"--b1\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"plain text\r\n" +
	"--b1 \r\n" +
	"Content-Type: text/html\r\n" +
	"\r\n" +
	"<p>html</p>\r\n" +
	"--b1--\r\n" +
	"epilogue\r\n"

func TestParse(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Subject: hello\nFrom: a@example.com\n\nbody text\n"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, header.LF, p.Break())
	assert.False(t, p.IsMultipart())
	assert.NoError(t, p.HeaderError())

	s, err := p.Get("subject")
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)

	c, err := p.Content()
	assert.NoError(t, err)
	assert.Equal(t, "body text\n", string(c))

	n, err := p.CountParts()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestParse_NoBody(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Subject: hello\r\nTo: b@example.com\r\n"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, header.CRLF, p.Break())

	_, err := p.Content()
	assert.ErrorIs(t, err, part.ErrNoContent)
}

func TestParse_EarliestSplit(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Subject: hello\n\nline one\r\n\r\nline two\r\n"))
	assert.Equal(t, header.LF, p.Break())
	c, err := p.Content()
	require.NoError(t, err)
	assert.Equal(t, "line one\r\n\r\nline two\r\n", string(c))
}

func TestParse_BadStart(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("junk line\nSubject: hello\n\nbody"))
	var badStart *field.BadStartError
	assert.ErrorAs(t, p.HeaderError(), &badStart)
	assert.Equal(t, 1, p.Len())
}

func TestPart_Multipart(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte(multipartMessage))
	assert.True(t, p.IsMultipart())

	n, err := p.CountParts()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "This is the preamble.\r\n", string(p.Prefix()))
	assert.Equal(t, "epilogue\r\n", string(p.Suffix()))

	c0, err := p.GetPart(0)
	require.NoError(t, err)
	mt, err := c0.GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", mt)
	body, err := c0.Content()
	assert.NoError(t, err)
	assert.Equal(t, "plain text", string(body))

	c1, err := p.GetPart(1)
	require.NoError(t, err)
	body, err = c1.Content()
	assert.NoError(t, err)
	assert.Equal(t, "<p>html</p>", string(body))
	assert.Equal(t, "Content-Type: text/html\r\n\r\n<p>html</p>", string(c1.Raw()))

	_, err = p.GetPart(2)
	assert.ErrorIs(t, err, part.ErrPartIndex)
	_, err = p.GetPart(-1)
	assert.ErrorIs(t, err, part.ErrPartIndex)
}

func TestPart_MissingFinalBoundary(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Content-Type: multipart/mixed; boundary=zz\n\n" +
		"--zz\nContent-Type: text/plain\n\nhello\n"))

	n, err := p.CountParts()
	assert.ErrorIs(t, err, part.ErrMissingFinalBoundary)
	assert.Equal(t, 0, n)

	_, err = p.GetPart(0)
	assert.ErrorIs(t, err, part.ErrMissingFinalBoundary)
	assert.Nil(t, p.Suffix())
}

func TestPart_NoOpeningDelimiter(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Content-Type: multipart/mixed; boundary=zz\n\njust text\n"))
	n, err := p.CountParts()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Nil(t, p.Prefix())
	assert.Nil(t, p.Suffix())
}

func TestPart_NoBoundary(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Content-Type: multipart/mixed\n\n--zz\n\nhello\n--zz--\n"))
	_, err := p.CountParts()
	assert.ErrorIs(t, err, part.ErrNoBoundary)
}

func TestPart_EmptySubpartHeader(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Content-Type: multipart/mixed; boundary=zz\n\n" +
		"--zz\n\nno header here\n--zz--\n"))
	n, err := p.CountParts()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	c, err := p.GetPart(0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	body, err := c.Content()
	assert.NoError(t, err)
	assert.Equal(t, "no header here", string(body))
}

func TestPart_Nested(t *testing.T) {
	t.Parallel()

	p := part.Parse([]byte("Content-Type: multipart/mixed; boundary=outer\n\n" +
		"--outer\n" +
		"Content-Type: multipart/alternative; boundary=inner\n\n" +
		"--inner\nContent-Type: text/plain\n\none\n" +
		"--inner\nContent-Type: text/html\n\ntwo\n" +
		"--inner--\n" +
		"--outer\nContent-Type: image/png\n\nxyz\n" +
		"--outer--\n"))

	n, err := p.CountParts()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	alt, err := p.GetPart(0)
	require.NoError(t, err)
	assert.True(t, alt.IsMultipart())
	n, err = alt.CountParts()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	html, err := alt.GetPart(1)
	require.NoError(t, err)
	body, err := html.Content()
	assert.NoError(t, err)
	assert.Equal(t, "two", string(body))
}

func TestFactoryFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	f := part.FactoryFunc(func(raw []byte) *part.Part {
		calls++
		return part.Parse(raw)
	})

	p := f.MakePart([]byte("Subject: x\n\n"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, p.Len())

	p = part.DefaultFactory.MakePart([]byte("Subject: y\n\n"))
	assert.Equal(t, 1, p.Len())
}
