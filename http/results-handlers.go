package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/results"
)

func (httpserver *HttpServer) getResults(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	res, err := httpserver.resultsSrvc.GetResults(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResultsResponse(res))
}

// downloadResults streams the results CSV directly, for spreadsheet use
// without an export bucket.
func (httpserver *HttpServer) downloadResults(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	eventID := chi.URLParam(r, "eventID")
	res, err := httpserver.resultsSrvc.GetResults(r.Context(), eventID)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	csvBytes, err := results.BuildCSV(res)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "results-"+eventID+".csv"))
	w.WriteHeader(http.StatusOK)
	w.Write(csvBytes)
}

// exportResults uploads the results CSV to the export bucket and returns
// the object URL.
func (httpserver *HttpServer) exportResults(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	eventID := chi.URLParam(r, "eventID")
	url, err := httpserver.resultsSrvc.ExportCSV(r.Context(), eventID)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("exported results", "event_id", eventID, "url", url)
	type exportResponse struct {
		URL string `json:"url"`
	}
	writeJsonSuccessResponse(w, exportResponse{URL: url})
}
