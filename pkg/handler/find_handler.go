package handler

import (
	"fmt"
	"net/http"

	"github.com/yumyai/seqspec/pkg/model"
)

// FindHandler serves ?selector=read|region|region-type|file&modality=&id=
func (dbctx *DBContext) FindHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	selector, err := model.ParseFindSelector(query.Get("selector"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	modality, id := query.Get("modality"), query.Get("id")
	if modality == "" || id == "" {
		writeError(w, r, fmt.Errorf("%w: modality and id are required", errBadRequest))
		return
	}

	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := a.Find(selector, modality, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
