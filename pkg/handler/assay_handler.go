// Handlers for whole assays

package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yumyai/seqspec/pkg/db"
	"github.com/yumyai/seqspec/pkg/handler/request"
	"github.com/yumyai/seqspec/pkg/render"
	"go.uber.org/zap"
)

// Upper bound on an uploaded spec document
const maxSpecBytes = 8 << 20

type StoredPayload struct {
	AssayID  string `json:"assay_id"`
	Revision string `json:"revision"`
}

func (dbctx *DBContext) ListAssaysHandler(w http.ResponseWriter, r *http.Request) {
	records, err := dbctx.Store.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// CreateAssayHandler stores the uploaded spec, replacing any assay with the
// same id. YAML is detected from the Content-Type or ?format=yaml.
func (dbctx *DBContext) CreateAssayHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSpecBytes))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	format := db.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") || r.URL.Query().Get("format") == "yaml" {
		format = db.FormatYAML
	}

	a, err := db.DecodeSpec(body, format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	revision, err := dbctx.putAssay(r.Context(), a)
	if err != nil {
		writeError(w, r, err)
		return
	}

	requestLogger(r).Info("Stored assay", zap.String("assay_id", a.AssayID), zap.String("revision", revision))
	writeJSON(w, http.StatusCreated, StoredPayload{AssayID: a.AssayID, Revision: revision})
}

func (dbctx *DBContext) GetAssayHandler(w http.ResponseWriter, r *http.Request) {
	format, ok := request.NewViewFormat(r.URL.Query().Get("format"), request.ViewFormatJSON)
	if !ok || (format != request.ViewFormatJSON && format != request.ViewFormatYAML) {
		writeError(w, r, fmt.Errorf("%w: format must be json or yaml", errBadRequest))
		return
	}

	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format == request.ViewFormatYAML {
		out, err := db.EncodeYAML(a)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeText(w, "application/yaml", out)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (dbctx *DBContext) DeleteAssayHandler(w http.ResponseWriter, r *http.Request) {
	assayID := r.PathValue("assay_id")
	if err := dbctx.deleteAssay(r.Context(), assayID); err != nil {
		writeError(w, r, err)
		return
	}

	requestLogger(r).Info("Deleted assay", zap.String("assay_id", assayID))
	writeJSON(w, http.StatusOK, StoredPayload{AssayID: assayID})
}

// AssaySummaryHandler renders the per-modality layout as text, or as JSON
// with ?format=json.
func (dbctx *DBContext) AssaySummaryHandler(w http.ResponseWriter, r *http.Request) {
	format, ok := request.NewViewFormat(r.URL.Query().Get("format"), request.ViewFormatText)
	if !ok || (format != request.ViewFormatText && format != request.ViewFormatJSON) {
		writeError(w, r, fmt.Errorf("%w: format must be text or json", errBadRequest))
		return
	}

	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format == request.ViewFormatJSON {
		summary, err := render.BuildAssaySummary(a)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	var buf bytes.Buffer
	if err := render.RenderAssaySummary(&buf, a); err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, "text/plain; charset=utf-8", buf.Bytes())
}
