package httpadapter

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestResponseErrorAfterHeadersOnlyLogs(t *testing.T) {
	logs := captureLog(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download-session/session_x", nil)
	ww := middleware.NewWrapResponseWriter(rec, req.ProtoMajor)

	ww.Header().Set("Content-Type", "application/zip")
	ww.WriteHeader(http.StatusOK)
	_, err := ww.Write([]byte("partial"))
	require.NoError(t, err)

	responseError(ww, req, errors.New("write: broken pipe"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Contains(t, logs.String(), "http: write GET /download-session/session_x: write: broken pipe")
}

func TestResponseErrorBeforeHeadersWritesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download-excel", nil)
	ww := middleware.NewWrapResponseWriter(rec, req.ProtoMajor)

	responseError(ww, req, notFound("no manifest uploaded yet"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestWriteFailureHidesInternalErrors(t *testing.T) {
	captureLog(t)
	rec := httptest.NewRecorder()
	writeFailure(rec, errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
	assert.Contains(t, rec.Body.String(), CodeInternal)
}
