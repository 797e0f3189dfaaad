// Handlers for the sequence spec (reads)

package handler

import (
	"net/http"

	"github.com/yumyai/seqspec/pkg/handler/request"
	"github.com/yumyai/seqspec/pkg/model"
	"go.uber.org/zap"
)

// ListReadsHandler returns every read, or only those of ?modality=.
func (dbctx *DBContext) ListReadsHandler(w http.ResponseWriter, r *http.Request) {
	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	reads := a.SequenceSpec
	if modality := r.URL.Query().Get("modality"); modality != "" {
		reads = a.GetSequenceSpec(modality)
	}
	if reads == nil {
		reads = make([]*model.Read, 0)
	}
	writeJSON(w, http.StatusOK, reads)
}

func (dbctx *DBContext) GetReadHandler(w http.ResponseWriter, r *http.Request) {
	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rd, err := a.GetRead(r.PathValue("read_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rd)
}

// ReadCoordinatesHandler projects a read onto its library. The modality
// defaults to the one the read is tagged with.
func (dbctx *DBContext) ReadCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	readID := r.PathValue("read_id")
	modality := r.URL.Query().Get("modality")
	if modality == "" {
		rd, err := a.GetRead(readID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		modality = rd.Modality
	}

	coord, err := a.ReadCoordinate(modality, readID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, coord)
}

func (dbctx *DBContext) InsertReadsHandler(w http.ResponseWriter, r *http.Request) {
	var req request.InsertReadsRequest
	if err := decodeBody(r, "insert reads request", &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	a, revision, err := dbctx.updateAssay(r.Context(), r.PathValue("assay_id"), func(a *model.Assay) error {
		return a.InsertReads(req.Reads, req.Modality, req.After)
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	requestLogger(r).Info("Inserted reads",
		zap.String("assay_id", a.AssayID),
		zap.String("modality", req.Modality),
		zap.Int("count", len(req.Reads)),
		zap.String("revision", revision),
	)
	writeJSON(w, http.StatusOK, a.GetSequenceSpec(req.Modality))
}
