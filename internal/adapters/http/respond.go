package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"scanhelper/internal/api"
	"scanhelper/internal/domain"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/extraction"
	"scanhelper/internal/services/guided"
	"scanhelper/internal/services/sessions"
	"scanhelper/internal/services/stocktake"
)

// Error codes clients switch on.
const (
	CodeUnreadable     = "UNREADABLE_CODE"
	CodeWrongPart      = "WRONG_PART"
	CodeNotFound       = "NOT_FOUND"
	CodeOverScan       = "OVER_SCAN"
	CodeBadRequest     = "BAD_REQUEST"
	CodeTooLarge       = "PAYLOAD_TOO_LARGE"
	CodeSessionMissing = "SESSION_NOT_FOUND"
	CodeExportFailed   = "EXPORT_FAILED"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

// httpError is a handler failure that already knows its status and code.
type httpError struct {
	status int
	code   string
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func notFound(msg string) error {
	return &httpError{status: http.StatusNotFound, code: CodeNotFound, msg: msg}
}

func invalid(msg string) error {
	return &httpError{status: http.StatusBadRequest, code: CodeBadRequest, msg: msg}
}

func writeError(w http.ResponseWriter, status int, detail api.ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := api.ErrorResponse{Error: detail, Timestamp: time.Now().UTC()}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("http: encode error response: %v", err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, api.ErrorDetail{Code: CodeBadRequest, Message: msg})
}

// requestError reports bodies and parameters the generated handlers could
// not decode.
func requestError(w http.ResponseWriter, r *http.Request, err error) {
	badRequest(w, err.Error())
}

// responseError receives handler errors and failures writing a response.
// Once the status line is out only a log line is possible.
func responseError(w http.ResponseWriter, r *http.Request, err error) {
	if ww, ok := w.(middleware.WrapResponseWriter); ok && ww.Status() != 0 {
		log.Printf("http: write %s %s: %v", r.Method, r.URL.Path, err)
		return
	}
	writeFailure(w, err)
}

// writeFailure maps service and storage errors onto ErrorResponse. Scan
// rejections are 422 with the rejection reason attached.
func writeFailure(w http.ResponseWriter, err error) {
	var (
		he      *httpError
		scanErr *domain.ScanError
		tooBig  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &he):
		writeError(w, he.status, api.ErrorDetail{Code: he.code, Message: he.msg})
	case errors.As(err, &scanErr):
		reason := string(scanErr.Reason)
		writeError(w, http.StatusUnprocessableEntity, api.ErrorDetail{
			Code:    scanErrorCode(scanErr),
			Message: scanErr.Error(),
			Reason:  &reason,
		})
	case errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, api.ErrorDetail{Code: CodeTooLarge, Message: err.Error()})
	case errors.Is(err, sessions.ErrNotFound), errors.Is(err, sessions.ErrNoSharedManifest):
		writeError(w, http.StatusNotFound, api.ErrorDetail{Code: CodeSessionMissing, Message: err.Error()})
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, http.StatusNotFound, api.ErrorDetail{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, ports.ErrInvalidName),
		errors.Is(err, guided.ErrEmptyManifest),
		errors.Is(err, sessions.ErrBadManifest),
		errors.Is(err, extraction.ErrNothingToExport),
		errors.Is(err, stocktake.ErrIndexOutOfRange):
		badRequest(w, err.Error())
	default:
		log.Printf("http: %v", err)
		writeError(w, http.StatusInternalServerError, api.ErrorDetail{Code: CodeInternal, Message: "internal error"})
	}
}

func scanErrorCode(e *domain.ScanError) string {
	switch e.Kind {
	case domain.KindMismatch:
		if e.Reason == domain.ReasonWrongPart {
			return CodeWrongPart
		}
		return CodeUnreadable
	case domain.KindNotFound:
		return CodeNotFound
	case domain.KindOverScan:
		return CodeOverScan
	default:
		return CodeUnreadable
	}
}
