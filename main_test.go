package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/seqspec/pkg/db"
	"go.uber.org/zap"
)

func TestSeedStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sample, err := os.ReadFile(filepath.Join("pkg", "db", "testdata", "rna.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rna.yaml"), sample, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("assay_id: [oops"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	store, err := db.OpenAssayStore(filepath.Join(t.TempDir(), "seqspec.db"))
	require.NoError(t, err)
	defer store.Close()

	seedStore(ctx, store, dir)
	seedStore(ctx, store, filepath.Join(dir, "missing"))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10x-rna", records[0].AssayID)
}

func TestGetenv(t *testing.T) {
	t.Setenv("SEQSPEC_TEST_VAR", "set")
	assert.Equal(t, "set", getenv("SEQSPEC_TEST_VAR", "default"))
	assert.Equal(t, "default", getenv("SEQSPEC_TEST_UNSET_VAR", "default"))
}

func TestNewHandlerCountsPanics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /main-explode", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	h := newHandler(mux, zap.NewNop())

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main-explode", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	metrics := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metrics.Body.String(), `seqspec_http_requests_total{method="GET",route="GET /main-explode",status="500"} 1`)
}
