package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"scanhelper/internal/api"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/extraction"
)

// Extraction

func (s *Server) PostExtraction(ctx context.Context, req api.PostExtractionRequestObject) (api.PostExtractionResponseObject, error) {
	id, tr := s.sessions.StartExtraction()
	return api.PostExtraction201JSONResponse{Id: id, View: toExtractionView(tr.View())}, nil
}

func (s *Server) GetExtractionId(ctx context.Context, req api.GetExtractionIdRequestObject) (api.GetExtractionIdResponseObject, error) {
	tr, err := s.sessions.Extraction(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetExtractionId200JSONResponse(toExtractionView(tr.View())), nil
}

func (s *Server) DeleteExtractionId(ctx context.Context, req api.DeleteExtractionIdRequestObject) (api.DeleteExtractionIdResponseObject, error) {
	s.sessions.Close(req.Id)
	return api.DeleteExtractionId204Response{}, nil
}

func (s *Server) PostExtractionIdScan(ctx context.Context, req api.PostExtractionIdScanRequestObject) (api.PostExtractionIdScanResponseObject, error) {
	tr, err := s.sessions.Extraction(req.Id)
	if err != nil {
		return nil, err
	}
	code := scanCode(req.Body)
	res, err := tr.Scan(code)
	if err != nil {
		s.hub.Publish(req.Id, "scan_rejected", map[string]string{"code": code, "error": err.Error()})
		return nil, err
	}
	result := toExtractionResult(res)
	s.hub.Publish(req.Id, "serial_extracted", result)
	return api.PostExtractionIdScan200JSONResponse{Result: result, View: toExtractionView(tr.View())}, nil
}

func (s *Server) DeleteExtractionIdPartsPart(ctx context.Context, req api.DeleteExtractionIdPartsPartRequestObject) (api.DeleteExtractionIdPartsPartResponseObject, error) {
	view, err := s.extractionRemove(req.Id, func(tr *extraction.Tracker) bool {
		return tr.RemovePart(req.Part)
	})
	if err != nil {
		return nil, err
	}
	return api.DeleteExtractionIdPartsPart200JSONResponse(view), nil
}

func (s *Server) DeleteExtractionIdPartsPartSerialsSerial(ctx context.Context, req api.DeleteExtractionIdPartsPartSerialsSerialRequestObject) (api.DeleteExtractionIdPartsPartSerialsSerialResponseObject, error) {
	view, err := s.extractionRemove(req.Id, func(tr *extraction.Tracker) bool {
		return tr.RemoveSerial(req.Part, req.Serial)
	})
	if err != nil {
		return nil, err
	}
	return api.DeleteExtractionIdPartsPartSerialsSerial200JSONResponse(view), nil
}

func (s *Server) DeleteExtractionIdNoSerialPart(ctx context.Context, req api.DeleteExtractionIdNoSerialPartRequestObject) (api.DeleteExtractionIdNoSerialPartResponseObject, error) {
	view, err := s.extractionRemove(req.Id, func(tr *extraction.Tracker) bool {
		return tr.RemoveNoSerial(req.Part)
	})
	if err != nil {
		return nil, err
	}
	return api.DeleteExtractionIdNoSerialPart200JSONResponse(view), nil
}

func (s *Server) extractionRemove(id string, remove func(*extraction.Tracker) bool) (api.ExtractionView, error) {
	tr, err := s.sessions.Extraction(id)
	if err != nil {
		return api.ExtractionView{}, err
	}
	if !remove(tr) {
		return api.ExtractionView{}, notFound("nothing to remove")
	}
	view := toExtractionView(tr.View())
	s.hub.Publish(id, "view_changed", view)
	return view, nil
}

func (s *Server) GetExtractionIdPartsPartSerialsTxt(ctx context.Context, req api.GetExtractionIdPartsPartSerialsTxtRequestObject) (api.GetExtractionIdPartsPartSerialsTxtResponseObject, error) {
	tr, err := s.sessions.Extraction(req.Id)
	if err != nil {
		return nil, err
	}
	serials := tr.Serials(req.Part)
	if len(serials) == 0 {
		return nil, notFound("no serials for " + req.Part)
	}
	return api.GetExtractionIdPartsPartSerialsTxt200TextResponse{
		Body:    strings.Join(serials, "\n"),
		Headers: api.GetExtractionIdPartsPartSerialsTxt200ResponseHeaders{ContentDisposition: attachment(req.Part + "_serials.txt")},
	}, nil
}

func (s *Server) PostExtractionIdExport(ctx context.Context, req api.PostExtractionIdExportRequestObject) (api.PostExtractionIdExportResponseObject, error) {
	tr, err := s.sessions.Extraction(req.Id)
	if err != nil {
		return nil, err
	}
	var name string
	if req.Body != nil && req.Body.SessionName != nil {
		name = strings.TrimSpace(*req.Body.SessionName)
	}
	res, err := tr.Export(ctx, s.store, name)
	switch {
	case errors.Is(err, extraction.ErrNothingToExport), errors.Is(err, ports.ErrInvalidName):
		return nil, err
	case err != nil:
		return nil, &httpError{status: http.StatusInternalServerError, code: CodeExportFailed, msg: err.Error()}
	}
	out := api.ExportResult{SessionName: res.SessionName, Parts: res.Parts, TotalSerials: res.TotalSerials}
	s.hub.Publish(req.Id, "exported", out)
	return api.PostExtractionIdExport200JSONResponse(out), nil
}

// Stock take

func (s *Server) PostStocktake(ctx context.Context, req api.PostStocktakeRequestObject) (api.PostStocktakeResponseObject, error) {
	name, data, err := readUpload(req.Body)
	if err != nil {
		return nil, err
	}
	id, tr, err := s.sessions.StartStockTake(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return api.PostStocktake201JSONResponse{Id: id, Items: toStockTakeItems(tr.Items())}, nil
}

func (s *Server) GetStocktakeId(ctx context.Context, req api.GetStocktakeIdRequestObject) (api.GetStocktakeIdResponseObject, error) {
	tr, err := s.sessions.StockTake(req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetStocktakeId200JSONResponse(toStockTakeItems(tr.Items())), nil
}

func (s *Server) DeleteStocktakeId(ctx context.Context, req api.DeleteStocktakeIdRequestObject) (api.DeleteStocktakeIdResponseObject, error) {
	s.sessions.Close(req.Id)
	return api.DeleteStocktakeId204Response{}, nil
}

func (s *Server) PostStocktakeIdScan(ctx context.Context, req api.PostStocktakeIdScanRequestObject) (api.PostStocktakeIdScanResponseObject, error) {
	tr, err := s.sessions.StockTake(req.Id)
	if err != nil {
		return nil, err
	}
	code := scanCode(req.Body)
	res, err := tr.Scan(code)
	if err != nil {
		s.hub.Publish(req.Id, "scan_rejected", map[string]string{"code": code, "error": err.Error()})
		return nil, err
	}
	result := toStockTakeResult(res)
	s.hub.Publish(req.Id, "item_counted", result)
	return api.PostStocktakeIdScan200JSONResponse{Result: result, Items: toStockTakeItems(tr.Items())}, nil
}

func (s *Server) DeleteStocktakeIdItemsIndex(ctx context.Context, req api.DeleteStocktakeIdItemsIndexRequestObject) (api.DeleteStocktakeIdItemsIndexResponseObject, error) {
	tr, err := s.sessions.StockTake(req.Id)
	if err != nil {
		return nil, err
	}
	removed, err := tr.Remove(req.Index)
	if err != nil {
		return nil, err
	}
	log.Printf("http: stocktake %s removed %s", req.Id, removed.PartNumber)
	item := toStockTakeItem(removed)
	s.hub.Publish(req.Id, "item_removed", item)
	return api.DeleteStocktakeIdItemsIndex200JSONResponse{Removed: item, Items: toStockTakeItems(tr.Items())}, nil
}

func (s *Server) PostStocktakeIdSave(ctx context.Context, req api.PostStocktakeIdSaveRequestObject) (api.PostStocktakeIdSaveResponseObject, error) {
	name, err := s.sessions.SaveStockTake(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.PostStocktakeIdSave201JSONResponse{Name: name}, nil
}

func (s *Server) GetStocktakeSnapshots(ctx context.Context, req api.GetStocktakeSnapshotsRequestObject) (api.GetStocktakeSnapshotsResponseObject, error) {
	list, err := s.store.ListStockTakes(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.GetStocktakeSnapshots200JSONResponse, len(list))
	for i, snap := range list {
		out[i] = api.Snapshot{Name: snap.Name, Date: snap.Date}
	}
	return out, nil
}

func (s *Server) PostStocktakeSnapshotsNameLoad(ctx context.Context, req api.PostStocktakeSnapshotsNameLoadRequestObject) (api.PostStocktakeSnapshotsNameLoadResponseObject, error) {
	id, tr, err := s.sessions.RestoreStockTake(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return api.PostStocktakeSnapshotsNameLoad201JSONResponse{Id: id, Items: toStockTakeItems(tr.Items())}, nil
}
