package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/part/header/field"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	lb := []byte("\n")

	lines, err := field.ParseLines([]byte("a:\nb:\nc:\n"), lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
	}, lines)

	lines, err = field.ParseLines([]byte("a:b\n b\n\tb\nb:\nc: x\n y\n"), lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n\tb\n"),
		[]byte("b:\n"),
		[]byte("c: x\n y\n"),
	}, lines)
}

func TestParseLines_BadStart(t *testing.T) {
	t.Parallel()

	lines, err := field.ParseLines([]byte(" start:\njunk\na:b\n b\nc:\n"), []byte("\n"))

	var badStart *field.BadStartError
	require.ErrorAs(t, err, &badStart)
	assert.Equal(t, []byte(" start:\njunk\n"), badStart.BadStart)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n"),
		[]byte("c:\n"),
	}, lines)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f := field.Parse([]byte("Subject: test\n"), []byte{'\n'})
	require.NotNil(t, f)
	require.NotNil(t, f.Raw())
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "test", f.Body())
	assert.Equal(t, "Subject", f.Raw().Name())
	assert.Equal(t, " test", f.Raw().Body())
	assert.Equal(t, "Subject: test", f.Raw().String())
	assert.Equal(t, "Subject: test", f.String())

	f = field.Parse([]byte("Subject: =?utf-8?b?4pmg4pmj4pml4pmm?=\r\n"), []byte{'\r', '\n'})
	assert.Equal(t, "♠♣♥♦", f.Body())
	assert.Equal(t, " =?utf-8?b?4pmg4pmj4pml4pmm?=", f.Raw().Body())

	f = field.Parse([]byte("To: a@example.com,\r\n b@example.com\r\n"), []byte{'\r', '\n'})
	assert.Equal(t, "To", f.Name())
	assert.Equal(t, "a@example.com, b@example.com", f.Body())

	f = field.Parse([]byte("NoColon\n"), []byte{'\n'})
	assert.Equal(t, "NoColon", f.Name())
	assert.Equal(t, "", f.Body())
	assert.Equal(t, "", f.Raw().Body())
}

func TestNew(t *testing.T) {
	t.Parallel()

	f := field.New("X-Test", "value")
	assert.Equal(t, "X-Test", f.Name())
	assert.Equal(t, "value", f.Body())
	assert.Nil(t, f.Raw())
}
