package util

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gen2brain/go-fitz"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrExtraction        = errors.New("failed to extract text")
)

const (
	mimePDF   = "application/pdf"
	mimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDoc   = "application/msword"
	mimePlain = "text/plain"
)

// ExtractText mengambil teks mentah dari file upload berdasarkan content type
// yang dideklarasikan (bukan sniffing isi file).
func ExtractText(data []byte, contentType string) (string, error) {
	// parameter seperti "; charset=utf-8" diabaikan
	if i := strings.Index(contentType, ";"); i != -1 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	switch contentType {
	case mimePDF:
		return extractPDF(data)
	case mimeDocx, mimeDoc:
		return extractDocx(data)
	case mimePlain:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s (upload PDF, DOCX, or TXT)", ErrUnsupportedFormat, contentType)
	}
}

// extractPDF menggabungkan teks semua halaman, urut halaman, dipisah newline.
// Gagal di satu halaman = gagal total, tanpa hasil parsial.
func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: open PDF: %s", ErrExtraction, err.Error())
	}
	defer doc.Close()

	var fullText strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %s", ErrExtraction, n+1, err.Error())
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}
	return fullText.String(), nil
}

// extractDocx membaca word/document.xml dari arsip DOCX dan mengumpulkan
// teks run (<w:t>), satu baris per paragraf (<w:p>).
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open DOCX: %s", ErrExtraction, err.Error())
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: read document.xml: %s", ErrExtraction, err.Error())
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: document.xml not found in archive", ErrExtraction)
	}
	defer docXML.Close()

	decoder := xml.NewDecoder(docXML)
	var fullText strings.Builder
	var inText bool
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parse document.xml: %s", ErrExtraction, err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				fullText.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				fullText.Write(t)
			}
		}
	}
	return strings.TrimSpace(fullText.String()), nil
}
