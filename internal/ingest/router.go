package ingest

import (
	"context"
	"path/filepath"
	"strings"
)

// Extractor turns raw PDF bytes into per-page text and document metadata.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (Document, error)
}

// Document is what an Extractor produces for one upload.
// Info is keyed by the conventional slash-prefixed names ("/Author", "/Title", ...)
// and is nil when the file carries no Info dictionary.
type Document struct {
	Pages []string
	Info  map[string]string
}

// Conventional Info dictionary keys.
const (
	KeyAuthor       = "/Author"
	KeyTitle        = "/Title"
	KeyCreationDate = "/CreationDate"
)

// Lookup returns the Info value for key, or nil when absent.
func (d Document) Lookup(key string) *string {
	if d.Info == nil {
		return nil
	}
	v, ok := d.Info[key]
	if !ok {
		return nil
	}
	return &v
}

// IsPDF reports whether name ends with ".pdf", ignoring case.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
