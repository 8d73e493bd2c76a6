package httpadapter

import (
	"scanhelper/internal/api"
	"scanhelper/internal/domain"
	"scanhelper/internal/services/extraction"
	"scanhelper/internal/services/guided"
	"scanhelper/internal/services/stocktake"
)

// Conversions from tracker and domain values to the generated wire models.
// Slices are never nil so clients always see [] rather than null.

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toItem(it domain.Item) api.Item {
	return api.Item{
		ItemCode:      it.ItemCode,
		Company:       optional(it.Company),
		PartNumber:    it.PartNumber,
		ScansRequired: it.ScansRequired,
	}
}

func toItems(items []domain.Item) []api.Item {
	out := make([]api.Item, len(items))
	for i, it := range items {
		out[i] = toItem(it)
	}
	return out
}

func toProgress(p domain.ItemProgress) api.ItemProgress {
	serials := p.SerialNumbers
	if serials == nil {
		serials = []string{}
	}
	return api.ItemProgress{ScansRemaining: p.ScansRemaining, SerialNumbers: serials}
}

func toGuidedState(st guided.State) api.GuidedState {
	return api.GuidedState{
		Session:  st.Session,
		Index:    st.Index,
		Total:    st.Total,
		Item:     toItem(st.Item),
		Progress: toProgress(st.Progress),
		Complete: st.Complete,
		CanBack:  st.CanBack,
		CanSkip:  st.CanSkip,
	}
}

func toGuidedStarted(id string, tr *guided.Tracker) api.GuidedStarted {
	items, progress := tr.Items(), tr.Progress()
	rows := make([]api.ItemRow, len(items))
	for i := range items {
		rows[i] = api.ItemRow{Item: toItem(items[i]), Progress: toProgress(progress[i])}
	}
	return api.GuidedStarted{Id: id, State: toGuidedState(tr.State()), Items: rows}
}

func toGuidedResult(res guided.Result) api.GuidedScanResult {
	return api.GuidedScanResult{
		Outcome:        string(res.Outcome),
		ItemIndex:      res.ItemIndex,
		ItemCode:       res.ItemCode,
		SerialNumber:   optional(res.SerialNumber),
		ScansRemaining: res.ScansRemaining,
		CurrentIndex:   res.CurrentIndex,
	}
}

func toExtractionView(v extraction.View) api.ExtractionView {
	out := api.ExtractionView{
		Parts:     make([]api.PartSerials, len(v.Parts)),
		NoSerial:  make([]api.NoSerialCount, len(v.NoSerial)),
		CanExport: v.CanExport,
	}
	for i, p := range v.Parts {
		serials := p.Serials
		if serials == nil {
			serials = []string{}
		}
		out.Parts[i] = api.PartSerials{PartNumber: p.PartNumber, Serials: serials}
	}
	for i, n := range v.NoSerial {
		out.NoSerial[i] = api.NoSerialCount{PartNumber: n.PartNumber, Count: n.Count}
	}
	return out
}

func toExtractionResult(res extraction.Result) api.ExtractionResult {
	return api.ExtractionResult{
		PartNumber:   res.PartNumber,
		SerialNumber: optional(res.SerialNumber),
		Added:        res.Added,
		NoSerial:     res.NoSerial,
		Count:        res.Count,
	}
}

func toStockTakeItem(it domain.StockTakeItem) api.StockTakeItem {
	return api.StockTakeItem{PartNumber: it.PartNumber, Quantity: it.Quantity, Scanned: it.Scanned}
}

func toStockTakeItems(items []domain.StockTakeItem) []api.StockTakeItem {
	out := make([]api.StockTakeItem, len(items))
	for i, it := range items {
		out[i] = toStockTakeItem(it)
	}
	return out
}

func toStockTakeResult(res stocktake.Result) api.StockTakeResult {
	return api.StockTakeResult{
		PartNumber: res.PartNumber,
		Scanned:    res.Scanned,
		Quantity:   res.Quantity,
		Fulfilled:  res.Fulfilled,
	}
}
