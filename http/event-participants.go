package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/event"
)

func (httpserver *HttpServer) addParticipant(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	type addParticipantRequest struct {
		Name string `json:"name"`
	}

	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ev, err := httpserver.eventSrvc.AddParticipant(r.Context(), chi.URLParam(r, "eventID"), req.Name)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}

func (httpserver *HttpServer) removeParticipant(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	ev, err := httpserver.eventSrvc.RemoveParticipant(r.Context(),
		chi.URLParam(r, "eventID"), chi.URLParam(r, "participantID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}

// setCurrentPerformer drives sequential judging: an empty participant_id
// clears the stage.
func (httpserver *HttpServer) setCurrentPerformer(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	type setPerformerRequest struct {
		ParticipantID string `json:"participant_id"`
		Status        string `json:"status"`
	}

	var req setPerformerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eventID := chi.URLParam(r, "eventID")

	// A request with an explicit status only flips that participant's
	// badge; a request without one moves the stage.
	if req.Status != "" {
		ev, err := httpserver.eventSrvc.SetParticipantStatus(r.Context(),
			eventID, req.ParticipantID, event.ParticipantStatus(req.Status))
		if err != nil {
			handleJsonSrvcError(logger, w, err)
			return
		}
		writeJsonSuccessResponse(w, mapEventResponse(ev))
		return
	}

	ev, err := httpserver.eventSrvc.SetCurrentPerformer(r.Context(), eventID, req.ParticipantID)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}
