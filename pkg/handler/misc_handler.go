// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Timestamp time.Time `json:"timestamp"`
}

func (dbctx *DBContext) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Health:    "ok",
		Timestamp: time.Now(),
	}

	code := http.StatusOK
	if err := dbctx.Store.Ping(r.Context()); err != nil {
		response.Health = "store unavailable"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, response)
}
