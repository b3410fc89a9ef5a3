package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/part/header"
	"github.com/zostay/go-mailparse/part/header/field"
)

const testHeader = "From: Alice <ALICE@example.com>\n" +
	"To: bob@example.com,\n" +
	"  Carol <carol@example.com>\n" +
	"Cc: not an address <<<\n" +
	"Bcc: dave@example.com\n" +
	"Bcc: erin@example.com\n" +
	"Subject: =?utf-8?q?caf=C3=A9?=\n" +
	"Date: Tue, 1 Jul 2003 10:52:37 +0200\n" +
	"Message-ID: <one@example.com>\n" +
	"Content-Type: multipart/mixed; boundary=\"b1\"; charset=UTF-8\n" +
	"Content-Transfer-Encoding:  Base64 \n"

func parseTestHeader(t *testing.T) *header.Header {
	t.Helper()
	h, err := header.Parse([]byte(testHeader), header.LF)
	require.NoError(t, err)
	return h
}

func TestParse(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)
	assert.Equal(t, 10, h.Len())
	assert.Equal(t, header.LF, h.Break())
	assert.Equal(t, "From", h.GetField(0).Name())
	assert.Nil(t, h.GetField(10))
	assert.Nil(t, h.GetField(-1))
	assert.Len(t, h.ListFields(), 10)
}

func TestParse_BadStart(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("junk\nSubject: x\n"), header.LF)
	var badStart *field.BadStartError
	assert.ErrorAs(t, err, &badStart)
	require.NotNil(t, h)
	assert.Equal(t, 1, h.Len())
}

func TestHeader_Get(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)

	b, err := h.Get("to")
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com,  Carol <carol@example.com>", b)

	b, err = h.Get("bcc")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, "dave@example.com", b)

	_, err = h.Get("reply-to")
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	bs, err := h.GetAll("BCC")
	assert.NoError(t, err)
	assert.Equal(t, []string{"dave@example.com", "erin@example.com"}, bs)

	_, err = h.GetAll("reply-to")
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	assert.True(t, h.Has("message-id"))
	assert.False(t, h.Has("sender"))
}

func TestHeader_Lookup(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)

	l := h.Lookup("Sender")
	assert.Equal(t, header.None, l.Shape)
	assert.Nil(t, l.First())

	l = h.Lookup("subject")
	assert.Equal(t, header.One, l.Shape)
	assert.Equal(t, "café", l.First().Body())

	l = h.Lookup("bcc")
	assert.Equal(t, header.Many, l.Shape)
	assert.Len(t, l.Fields, 2)
	assert.Equal(t, "many", l.Shape.String())
}

func TestHeader_ContentType(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)

	mt, err := h.GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mt)

	b, err := h.GetBoundary()
	assert.NoError(t, err)
	assert.Equal(t, "b1", b)

	cs, err := h.GetCharset()
	assert.NoError(t, err)
	assert.Equal(t, "UTF-8", cs)

	cte, err := h.GetTransferEncoding()
	assert.NoError(t, err)
	assert.Equal(t, "base64", cte)

	h, err = header.Parse([]byte("Content-Type: text/plain\n"), header.LF)
	require.NoError(t, err)
	_, err = h.GetBoundary()
	assert.ErrorIs(t, err, header.ErrNoSuchFieldParameter)

	_, err = h.GetTransferEncoding()
	assert.ErrorIs(t, err, header.ErrNoSuchField)
}

func TestHeader_ContentTypeLenient(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("Content-Type: Multipart/Mixed; boundary=\"xyz\"; junk\n"), header.LF)
	require.NoError(t, err)

	pv, err := h.GetContentType()
	assert.Error(t, err)
	require.NotNil(t, pv)
	assert.Equal(t, "multipart/mixed", pv.MediaType())

	b, err := h.GetBoundary()
	assert.Error(t, err)
	assert.Equal(t, "xyz", b)
}

func TestHeader_Subject(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)
	s, err := h.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "café", s)

	ids, err := h.GetMessageID()
	assert.NoError(t, err)
	assert.Equal(t, []string{"<one@example.com>"}, ids)
}

func TestHeader_AddressList(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)

	al, err := h.GetAddressList("to")
	require.NoError(t, err)
	require.Len(t, al, 2)
	assert.Equal(t, "bob@example.com", al[0].Address())
	assert.Equal(t, "carol@example.com", al[1].Address())

	_, err = h.GetAddressList("cc")
	assert.ErrorIs(t, err, header.ErrMalformedAddressList)

	_, err = h.GetAddressList("bcc")
	assert.ErrorIs(t, err, header.ErrManyFields)

	als, err := h.GetAllAddressLists("bcc")
	require.NoError(t, err)
	require.Len(t, als, 2)
	assert.Equal(t, "dave@example.com", als[0][0].Address())
	assert.Equal(t, "erin@example.com", als[1][0].Address())

	als, err = h.GetAllAddressLists("cc")
	assert.ErrorIs(t, err, header.ErrMalformedAddressList)
	assert.Equal(t, 1, len(als))
	assert.Nil(t, als[0])
}

func TestParseAddressList_Groups(t *testing.T) {
	t.Parallel()

	al, err := header.ParseAddressList("Team: Alice <Alice@example.com>, Bob <bob@example.com>;, carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"alice@example.com",
		"bob@example.com",
		"carol@example.com",
	}, header.Emails(al))

	assert.Empty(t, header.Emails(nil))
}

func TestParseAddressList_GroupWithBareAddrSpec(t *testing.T) {
	t.Parallel()

	var err error
	assert.NotPanics(t, func() {
		_, err = header.ParseAddressList("list: b@example.com;")
	})
	assert.ErrorIs(t, err, header.ErrMalformedAddressList)
}

func TestHeader_AddressListEncodedDisplayName(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte(
		"From: =?utf-8?q?M=C3=BCller=2C_Hans?= <hans@example.com>\n"+
			"To: =?utf-8?q?Doe_=3Cboss=3E?= <JD@example.com>,\n"+
			" b@example.com\n"), header.LF)
	require.NoError(t, err)

	from, err := h.Get("from")
	require.NoError(t, err)
	assert.Equal(t, "Müller, Hans <hans@example.com>", from)

	al, err := h.GetAddressList("from")
	require.NoError(t, err)
	assert.Equal(t, []string{"hans@example.com"}, header.Emails(al))

	als, err := h.GetAllAddressLists("to")
	require.NoError(t, err)
	require.Len(t, als, 1)
	assert.Equal(t, []string{"jd@example.com", "b@example.com"}, header.Emails(als[0]))
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	expect := time.Date(2003, 7, 1, 8, 52, 37, 0, time.UTC)

	ts, err := header.ParseTime("Tue, 1 Jul 2003 10:52:37 +0200")
	assert.NoError(t, err)
	assert.True(t, expect.Equal(ts))

	ts, err = header.ParseTime("2003-07-01T08:52:37Z")
	assert.NoError(t, err)
	assert.True(t, expect.Equal(ts))

	_, err = header.ParseTime("not a date at all")
	assert.Error(t, err)
}

func TestHeader_GetDate(t *testing.T) {
	t.Parallel()

	h := parseTestHeader(t)
	ts, err := h.GetDate()
	assert.NoError(t, err)
	assert.Equal(t, 2003, ts.Year())
}

func TestBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("\r\n"), header.CRLF.Bytes())
	assert.Equal(t, []byte("\n"), header.Meh.Bytes())
	assert.Equal(t, "\r", header.CR.String())
}
