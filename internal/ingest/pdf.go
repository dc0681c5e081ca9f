package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrEmptyDocument = errors.New("empty document")

var _ Extractor = (*PDFExtractor)(nil)

// PDFExtractor reads the embedded text layer with github.com/ledongthuc/pdf.
// Page text is trimmed of surrounding whitespace, so image-only pages come
// back as empty strings.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (doc Document, err error) {
	if len(data) == 0 {
		return Document{}, ErrEmptyDocument
	}

	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			doc = Document{}
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return Document{}, fmt.Errorf("read page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return Document{Pages: pages, Info: readInfo(r)}, nil
}

// readInfo collects the string-valued entries of the trailer Info dictionary.
func readInfo(r *pdf.Reader) map[string]string {
	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil
	}
	out := make(map[string]string)
	for _, k := range info.Keys() {
		v := info.Key(k)
		if v.Kind() != pdf.String {
			continue
		}
		out["/"+k] = v.Text()
	}
	return out
}
