package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(dbctx *DBContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	mux.HandleFunc("GET /api/v1/health", dbctx.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Assays
	mux.HandleFunc("GET /api/v1/assays", dbctx.ListAssaysHandler)
	mux.HandleFunc("POST /api/v1/assays", dbctx.CreateAssayHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}", dbctx.GetAssayHandler)
	mux.HandleFunc("DELETE /api/v1/assays/{assay_id}", dbctx.DeleteAssayHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/summary", dbctx.AssaySummaryHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/find", dbctx.FindHandler)

	// Library spec
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/library/{modality}", dbctx.GetLibraryHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/library/{modality}/leaves", dbctx.LeavesHandler)
	mux.HandleFunc("PATCH /api/v1/assays/{assay_id}/library/{modality}/regions/{region_id}", dbctx.PatchRegionHandler)
	mux.HandleFunc("POST /api/v1/assays/{assay_id}/regions", dbctx.InsertRegionsHandler)

	// Sequence spec
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/reads", dbctx.ListReadsHandler)
	mux.HandleFunc("POST /api/v1/assays/{assay_id}/reads", dbctx.InsertReadsHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/reads/{read_id}", dbctx.GetReadHandler)
	mux.HandleFunc("GET /api/v1/assays/{assay_id}/reads/{read_id}/coordinates", dbctx.ReadCoordinatesHandler)

	return mux
}
