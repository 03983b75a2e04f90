package util

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText([]byte("hello resume"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "hello resume", got)
}

func TestExtractTextPlainWithCharsetParam(t *testing.T) {
	got, err := ExtractText([]byte("abc"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText([]byte{0xFF, 0xD8}, "image/jpeg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractDocx(t *testing.T) {
	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Go Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>5 years experience with </w:t></w:r><w:r><w:t>PostgreSQL</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := ExtractText(docx, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\n5 years experience with PostgreSQL", got)
}

func TestExtractDocxNotAnArchive(t *testing.T) {
	_, err := ExtractText([]byte("plain bytes, not a zip"), "application/msword")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractPDFGarbage(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a pdf"), "application/pdf")
	assert.ErrorIs(t, err, ErrExtraction)
}
