package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) activateEvent(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	ev, err := httpserver.eventSrvc.ActivateEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	if httpserver.metrics != nil {
		httpserver.metrics.EventActivated()
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}

func (httpserver *HttpServer) deactivateEvent(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	ev, err := httpserver.eventSrvc.DeactivateEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}
