package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailparse/part/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	mt, err := param.Parse("text")
	assert.NoError(t, err)
	assert.Equal(t, "text", mt.MediaType())
	assert.Equal(t, "", mt.Type())
	assert.Equal(t, "", mt.Subtype())
	assert.Equal(t, map[string]string{}, mt.Parameters())

	mt, err = param.Parse("image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "image", mt.Type())
	assert.Equal(t, "jpeg", mt.Subtype())

	mt, err = param.Parse(`Multipart/Mixed; Boundary="abc 123"; charset=UTF-8`)
	assert.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mt.MediaType())
	assert.Equal(t, "abc 123", mt.Boundary())
	assert.Equal(t, "UTF-8", mt.Charset())
	assert.True(t, mt.HasParameter("BOUNDARY"))
	assert.False(t, mt.HasParameter("filename"))
	assert.Equal(t, "multipart/mixed; boundary=abc 123; charset=UTF-8", mt.String())
}

func TestParse_Lenient(t *testing.T) {
	t.Parallel()

	mt, err := param.Parse("Text/HTML; charset=\"utf-8\"; junk; name=a=b;")
	require.Error(t, err)
	require.NotNil(t, mt)
	assert.Equal(t, "text/html", mt.MediaType())
	assert.Equal(t, "utf-8", mt.Charset())
	assert.Equal(t, "a=b", mt.Parameter("name"))
	assert.Len(t, mt.Parameters(), 2)

	mt, err = param.Parse("test:plain")
	assert.Error(t, err)
	assert.Equal(t, "test:plain", mt.MediaType())
}

func TestNew(t *testing.T) {
	t.Parallel()

	mt := param.New("attachment", map[string]string{"filename": "a.txt"})
	assert.Equal(t, "attachment", mt.Disposition())
	assert.Equal(t, "a.txt", mt.Filename())
	assert.Equal(t, "attachment; filename=a.txt", mt.String())

	mt = param.New("inline", nil)
	assert.Equal(t, map[string]string{}, mt.Parameters())
}

func TestValue_Clone(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain", map[string]string{"charset": "utf-8"})
	c := mt.Clone()
	assert.Equal(t, mt, c)
	assert.NotSame(t, mt, c)
}
