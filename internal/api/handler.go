package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MalithGihan/pdfparser-service/internal/ingest"
	"github.com/MalithGihan/pdfparser-service/pkg/types"
)

// multipart headers and boundaries on top of the file itself
const formOverhead = 1 << 20

type Handler struct {
	extractor ingest.Extractor
	maxUpload int64
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthStatus{Status: "healthy", Service: ServiceName})
}

// Parse handles POST /parse with a multipart "file" field.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+formOverhead)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds %d bytes", h.maxUpload))
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fh, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing form field \"file\"")
		return
	}
	defer file.Close()

	if !ingest.IsPDF(fh.Filename) {
		writeError(w, http.StatusBadRequest, "File must be a PDF")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("filename", fh.Filename).Msg("read upload")
		writeError(w, http.StatusInternalServerError, "PDF parsing failed: "+err.Error())
		return
	}

	doc, err := h.extractor.Extract(r.Context(), data)
	if err != nil {
		log.Error().Err(err).Str("filename", fh.Filename).Msg("error parsing pdf")
		writeError(w, http.StatusInternalServerError, "PDF parsing failed: "+err.Error())
		return
	}

	res := Assemble(doc)
	logExtraction(log, doc, res)
	log.Info().
		Str("filename", fh.Filename).
		Int("pages", res.Metadata.Pages).
		Int("chars", len(res.Text)).
		Msg("successfully parsed pdf")

	writeJSON(w, http.StatusOK, res)
}

// Assemble joins page texts with "\n" and copies the Info fields. A page
// without text contributes "" so N pages always yield N-1 separators.
func Assemble(doc ingest.Document) types.ParseResult {
	return types.ParseResult{
		Text: strings.Join(doc.Pages, "\n"),
		Metadata: types.Metadata{
			Pages:       len(doc.Pages),
			Author:      doc.Lookup(ingest.KeyAuthor),
			Title:       doc.Lookup(ingest.KeyTitle),
			CreatedDate: doc.Lookup(ingest.KeyCreationDate),
		},
	}
}

func logExtraction(log *zerolog.Logger, doc ingest.Document, res types.ParseResult) {
	if len(doc.Pages) > 0 {
		first := doc.Pages[0]
		prefix := "EMPTY"
		if strings.TrimSpace(first) != "" {
			prefix = truncate(first, 100)
		}
		log.Info().Int("length", len(first)).Msg("first page text length")
		log.Info().Str("prefix", prefix).Msg("first page text prefix")
	}
	log.Info().Int("length", len(res.Text)).Msg("total extracted text length")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, types.ErrorResponse{Detail: detail})
}
