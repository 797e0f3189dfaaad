// Handlers for the region tree of one modality

package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/yumyai/seqspec/pkg/handler/request"
	"github.com/yumyai/seqspec/pkg/model"
	"github.com/yumyai/seqspec/pkg/render"
	"go.uber.org/zap"
)

func (dbctx *DBContext) GetLibraryHandler(w http.ResponseWriter, r *http.Request) {
	format, ok := request.NewViewFormat(r.URL.Query().Get("format"), request.ViewFormatJSON)
	if !ok || format == request.ViewFormatYAML || format == request.ViewFormatText {
		writeError(w, r, fmt.Errorf("%w: format must be json, newick or ascii", errBadRequest))
		return
	}

	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	modality := r.PathValue("modality")
	libspec, err := a.GetLibrarySpec(modality)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch format {
	case request.ViewFormatNewick:
		writeText(w, "text/plain; charset=utf-8", []byte(libspec.ToNewick()))
	case request.ViewFormatASCII:
		var buf bytes.Buffer
		if err := render.RenderLibrarySequence(&buf, a, modality); err != nil {
			writeError(w, r, err)
			return
		}
		writeText(w, "text/plain; charset=utf-8", buf.Bytes())
	default:
		writeJSON(w, http.StatusOK, libspec)
	}
}

// LeavesHandler lists the leaves of a modality, treating ?cut_at= as a leaf.
func (dbctx *DBContext) LeavesHandler(w http.ResponseWriter, r *http.Request) {
	a, err := dbctx.loadAssay(r.Context(), r.PathValue("assay_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	libspec, err := a.GetLibrarySpec(r.PathValue("modality"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var leaves []*model.Region
	if cutAt := r.URL.Query().Get("cut_at"); cutAt != "" {
		leaves = libspec.LeavesCutAt(cutAt)
	} else {
		leaves = libspec.Leaves()
	}
	writeJSON(w, http.StatusOK, leaves)
}

// PatchRegionHandler applies a partial update to every region with the
// given id (first match per branch) and resynchronizes the modality.
func (dbctx *DBContext) PatchRegionHandler(w http.ResponseWriter, r *http.Request) {
	var upd model.RegionUpdate
	if err := decodeBody(r, "region update", &upd); err != nil {
		writeError(w, r, err)
		return
	}
	if err := request.ValidateRegionUpdate(&upd); err != nil {
		writeError(w, r, err)
		return
	}

	modality := r.PathValue("modality")
	regionID := r.PathValue("region_id")

	var libspec *model.Region
	_, revision, err := dbctx.updateAssay(r.Context(), r.PathValue("assay_id"), func(a *model.Assay) error {
		target, err := a.GetLibrarySpec(modality)
		if err != nil {
			return err
		}
		if len(target.FindByID(regionID)) == 0 {
			return fmt.Errorf("%w: '%s' in modality '%s'", model.ErrRegionNotFound, regionID, modality)
		}

		target.UpdateByID(regionID, upd)
		target.Resynchronize()

		// renaming the top-level region would break the modality link
		libspec, err = a.GetLibrarySpec(modality)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	requestLogger(r).Info("Updated region",
		zap.String("assay_id", r.PathValue("assay_id")),
		zap.String("modality", modality),
		zap.String("region_id", regionID),
		zap.String("revision", revision),
	)
	writeJSON(w, http.StatusOK, libspec)
}

func (dbctx *DBContext) InsertRegionsHandler(w http.ResponseWriter, r *http.Request) {
	var req request.InsertRegionsRequest
	if err := decodeBody(r, "insert regions request", &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	var libspec *model.Region
	_, revision, err := dbctx.updateAssay(r.Context(), r.PathValue("assay_id"), func(a *model.Assay) error {
		if err := a.InsertRegions(req.Regions, req.Modality, req.After); err != nil {
			return err
		}
		var err error
		libspec, err = a.GetLibrarySpec(req.Modality)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	requestLogger(r).Info("Inserted regions",
		zap.String("assay_id", r.PathValue("assay_id")),
		zap.String("modality", req.Modality),
		zap.Int("count", len(req.Regions)),
		zap.String("revision", revision),
	)
	writeJSON(w, http.StatusOK, libspec)
}
