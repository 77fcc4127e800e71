// Package document extracts raw text from uploaded files: per-page PDF
// text, per-slide deck text, and whole-file plain text. Unknown extensions
// fall back to the plain-text path at the ingestion layer.
package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"prism-brain-be/pkg/connector"
)

var slidePathPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// ExtractPDF returns the extracted text of every page, in page order.
// Pages that yield no text are returned as empty strings so page numbers
// stay aligned.
func ExtractPDF(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, connector.NewError(connector.ErrInvalidLocator, "open pdf: %v", err)
		}
		return nil, connector.NewError(connector.ErrParseFailed, "open pdf: %v", err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// One unreadable page should not lose the rest of the document.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// ExtractSlides returns the concatenated text runs of each slide of a
// .pptx deck, in slide order. PPTX is a zip of XML parts; the text runs
// live in <a:t> elements under ppt/slides/slideN.xml.
func ExtractSlides(path string) ([]string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, connector.NewError(connector.ErrInvalidLocator, "open deck: %v", err)
		}
		return nil, connector.NewError(connector.ErrParseFailed, "open deck: %v", err)
	}
	defer archive.Close()

	type slidePart struct {
		number int
		file   *zip.File
	}
	var parts []slidePart
	for _, file := range archive.File {
		m := slidePathPattern.FindStringSubmatch(file.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		parts = append(parts, slidePart{number: n, file: file})
	}
	if len(parts) == 0 {
		return nil, connector.NewError(connector.ErrParseFailed, "no slides found in %s", path)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].number < parts[j].number })

	slides := make([]string, 0, len(parts))
	for _, part := range parts {
		text, err := slideText(part.file)
		if err != nil {
			return nil, connector.NewError(connector.ErrParseFailed, "slide %d: %v", part.number, err)
		}
		slides = append(slides, text)
	}
	return slides, nil
}

func slideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var runs []string
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse slide xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "t" {
			continue
		}
		var run string
		if err := decoder.DecodeElement(&run, &start); err != nil {
			return "", fmt.Errorf("decode text run: %w", err)
		}
		runs = append(runs, run)
	}
	return strings.Join(runs, " "), nil
}

// ReadText reads a plain-text file wholesale; the normalizer handles the
// paragraph split.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", connector.NewError(connector.ErrInvalidLocator, "open document: %v", err)
		}
		return "", connector.NewError(connector.ErrFetchFailed, "read document: %v", err)
	}
	return string(data), nil
}
