package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"scanhelper/internal/api"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/guided"
	"scanhelper/internal/services/sessions"
)

type Options struct {
	// MaxUploadBytes caps request bodies, manifest uploads included.
	MaxUploadBytes int64
	// Port is reported by /network-info.
	Port string
}

type Server struct {
	sessions *sessions.Service
	store    ports.Storage
	hub      *Hub
	opts     Options
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(svc *sessions.Service, store ports.Storage, hub *Hub, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 16 << 20
	}
	return &Server{sessions: svc, store: store, hub: hub, opts: opts}
}

// Routes mounts the generated API and the websocket endpoint, which the
// OpenAPI document does not describe.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.limitBody)

	r.Get("/ws/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.hub.serve(w, r, chi.URLParam(r, "id"))
	})

	strict := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: requestError,
	})
	return r
}

func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func scanCode(body *api.ScanRequest) string {
	if body == nil {
		return ""
	}
	return body.Code
}

// attachment builds a Content-Disposition value for a download.
func attachment(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

// readUpload returns the "file" part of a multipart upload.
func readUpload(mr *multipart.Reader) (string, []byte, error) {
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", nil, invalid("no file uploaded")
		}
		if err != nil {
			return "", nil, uploadError(err)
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return "", nil, uploadError(err)
		}
		return part.FileName(), data, nil
	}
}

func uploadError(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return err
	}
	return invalid("read upload: " + err.Error())
}

// General

func (s *Server) GetHealthz(ctx context.Context, req api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

var mobileAgents = []string{"Android", "webOS", "iPhone", "iPad", "iPod", "BlackBerry", "IEMobile", "Opera Mini"}

func isMobile(userAgent string) bool {
	for _, a := range mobileAgents {
		if strings.Contains(userAgent, a) {
			return true
		}
	}
	return false
}

func (s *Server) GetCheckMobile(ctx context.Context, req api.GetCheckMobileRequestObject) (api.GetCheckMobileResponseObject, error) {
	var ua string
	if req.Params.UserAgent != nil {
		ua = *req.Params.UserAgent
	}
	return api.GetCheckMobile200JSONResponse{IsMobile: isMobile(ua)}, nil
}

// Guided

func (s *Server) PostUpload(ctx context.Context, req api.PostUploadRequestObject) (api.PostUploadResponseObject, error) {
	name, data, err := readUpload(req.Body)
	if err != nil {
		return nil, err
	}
	id, tr, err := s.sessions.StartGuided(ctx, name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	log.Printf("http: guided upload %s -> %s", name, tr.Session())
	return api.PostUpload201JSONResponse(toGuidedStarted(id, tr)), nil
}

func (s *Server) GetLatestItems(ctx context.Context, req api.GetLatestItemsRequestObject) (api.GetLatestItemsResponseObject, error) {
	m, err := s.sessions.Latest()
	if err != nil {
		return nil, err
	}
	return api.GetLatestItems200JSONResponse{
		Items:        toItems(m.Items),
		Session:      m.Session,
		OriginalName: m.OriginalName,
		UploadedAt:   m.UploadedAt,
	}, nil
}

// GetDownloadExcel sends the newest uploaded manifest back unchanged.
func (s *Server) GetDownloadExcel(ctx context.Context, req api.GetDownloadExcelRequestObject) (api.GetDownloadExcelResponseObject, error) {
	src, err := s.store.LatestSource(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, notFound("no manifest uploaded yet")
	}
	if err != nil {
		return nil, err
	}
	return api.GetDownloadExcel200ApplicationoctetStreamResponse{
		Body:          bytes.NewReader(src.Data),
		ContentLength: int64(len(src.Data)),
		Headers:       api.GetDownloadExcel200ResponseHeaders{ContentDisposition: attachment(src.Name)},
	}, nil
}

func (s *Server) PostSessionsShared(ctx context.Context, req api.PostSessionsSharedRequestObject) (api.PostSessionsSharedResponseObject, error) {
	id, tr, err := s.sessions.JoinShared()
	if err != nil {
		return nil, err
	}
	return api.PostSessionsShared201JSONResponse(toGuidedStarted(id, tr)), nil
}

func (s *Server) GetGuidedId(ctx context.Context, req api.GetGuidedIdRequestObject) (api.GetGuidedIdResponseObject, error) {
	tr, err := s.sessions.Guided(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetGuidedId200JSONResponse(toGuidedStarted(req.Id, tr)), nil
}

func (s *Server) DeleteGuidedId(ctx context.Context, req api.DeleteGuidedIdRequestObject) (api.DeleteGuidedIdResponseObject, error) {
	s.sessions.Close(req.Id)
	return api.DeleteGuidedId204Response{}, nil
}

func (s *Server) PostGuidedIdScan(ctx context.Context, req api.PostGuidedIdScanRequestObject) (api.PostGuidedIdScanResponseObject, error) {
	tr, err := s.sessions.Guided(req.Id)
	if err != nil {
		return nil, err
	}
	code := scanCode(req.Body)
	res, err := tr.Scan(code)
	if err != nil {
		s.publishGuided(req.Id, tr, "scan_rejected", map[string]string{"code": code, "error": err.Error()})
		return nil, err
	}
	result := toGuidedResult(res)
	s.publishGuided(req.Id, tr, string(res.Outcome), result)
	return api.PostGuidedIdScan200JSONResponse{Result: result, State: toGuidedState(tr.State())}, nil
}

func (s *Server) PostGuidedIdBack(ctx context.Context, req api.PostGuidedIdBackRequestObject) (api.PostGuidedIdBackResponseObject, error) {
	tr, err := s.sessions.Guided(req.Id)
	if err != nil {
		return nil, err
	}
	st := toGuidedState(tr.Back())
	s.publishGuided(req.Id, tr, "navigated", st)
	return api.PostGuidedIdBack200JSONResponse(st), nil
}

func (s *Server) PostGuidedIdSkip(ctx context.Context, req api.PostGuidedIdSkipRequestObject) (api.PostGuidedIdSkipResponseObject, error) {
	tr, err := s.sessions.Guided(req.Id)
	if err != nil {
		return nil, err
	}
	st := toGuidedState(tr.Skip())
	s.publishGuided(req.Id, tr, "navigated", st)
	return api.PostGuidedIdSkip200JSONResponse(st), nil
}

func (s *Server) publishGuided(id string, tr *guided.Tracker, typ string, data any) {
	s.hub.Publish(id, typ, data)
	s.hub.Publish(tr.Session(), typ, data)
}

// Storage sessions

func (s *Server) GetSessions(ctx context.Context, req api.GetSessionsRequestObject) (api.GetSessionsResponseObject, error) {
	list, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	rows := make(api.GetSessions200JSONResponse, 0, len(list))
	for _, it := range list {
		rows = append(rows, api.SessionRow{Name: it.Name, Date: it.Date, Age: humanize.Time(it.Date), FileCount: it.FileCount})
	}
	return rows, nil
}
