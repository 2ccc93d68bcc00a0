package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

const testMaxUpload = 1 << 20

// uploadedFile builds a real multipart upload so extraction sees the same
// file/header pair the handler would.
func uploadedFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("exam_guide_file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	file, header, err := req.FormFile("exam_guide_file")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return file, header
}

func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func pdfBytes(t *testing.T, text string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 6, text, "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build pdf fixture: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextTxt(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	file, header := uploadedFile(t, "guide.txt", []byte("  Chapter 1: Processes and Threads\n"))

	text, err := svc.ExtractText(file, header)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Chapter 1: Processes and Threads" {
		t.Fatalf("text = %q", text)
	}
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	file, header := uploadedFile(t, "guide.txt", []byte{'r', 0xE9, 's', 'u', 'm', 0xE9})

	text, err := svc.ExtractText(file, header)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "résumé" {
		t.Fatalf("text = %q", text)
	}
}

func TestExtractTextDocx(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	data := docxBytes(t, "Unit 3: Memory Management", "Paging, segmentation and TLBs.")
	file, header := uploadedFile(t, "guide.docx", data)

	text, err := svc.ExtractText(file, header)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "Unit 3: Memory Management") {
		t.Fatalf("missing first paragraph: %q", text)
	}
	if !strings.Contains(text, "Paging, segmentation and TLBs.") {
		t.Fatalf("missing second paragraph: %q", text)
	}
}

func TestExtractTextPDF(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	file, header := uploadedFile(t, "guide.pdf", pdfBytes(t, "Scheduling algorithms overview"))

	text, err := svc.ExtractText(file, header)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text == "" {
		t.Fatal("no text extracted from pdf")
	}
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	file, header := uploadedFile(t, "guide.xlsx", []byte("cells"))

	_, err := svc.ExtractText(file, header)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("want ErrUnsupportedFileType, got %v", err)
	}
}

func TestExtractTextTooLarge(t *testing.T) {
	svc := NewGuideService(16)
	file, header := uploadedFile(t, "guide.txt", bytes.Repeat([]byte("a"), 64))

	_, err := svc.ExtractText(file, header)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("want ErrFileTooLarge, got %v", err)
	}
}

func TestExtractTextEmptyFile(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	file, header := uploadedFile(t, "guide.txt", []byte("   \n\t "))

	_, err := svc.ExtractText(file, header)
	if !errors.Is(err, ErrEmptyGuide) {
		t.Fatalf("want ErrEmptyGuide, got %v", err)
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	svc := NewGuideService(testMaxUpload)
	file, header := uploadedFile(t, "guide.docx", []byte("not a zip archive"))

	if _, err := svc.ExtractText(file, header); err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}
