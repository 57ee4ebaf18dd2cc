package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/event"
)

func (httpserver *HttpServer) listEvents(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	events, err := httpserver.eventSrvc.ListEvents(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventListResponse(events))
}

// listActiveEvents is the judge-facing listing: only events an admin has
// made live.
func (httpserver *HttpServer) listActiveEvents(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	events, err := httpserver.eventSrvc.ListActiveEvents(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventListResponse(events))
}

func (httpserver *HttpServer) getEvent(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	ev, err := httpserver.eventSrvc.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}

func (httpserver *HttpServer) createEvent(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	type createEventRequest struct {
		Title           string     `json:"title"`
		Description     string     `json:"description"`
		Category        string     `json:"category"`
		Venue           string     `json:"venue"`
		MaxParticipants int        `json:"max_participants"`
		JudgingMode     string     `json:"judging_mode"`
		StartTime       *time.Time `json:"start_time"`
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ev, err := httpserver.eventSrvc.CreateEvent(r.Context(), &event.CreateEventParams{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Venue:           req.Venue,
		MaxParticipants: req.MaxParticipants,
		JudgingMode:     event.JudgingMode(req.JudgingMode),
		StartTime:       req.StartTime,
	})
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("created event", "event_id", ev.ID, "title", ev.Title)
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}

// deleteEvent removes the event and then cleans up its criteria, awards
// and scores best-effort. A failed cleanup leaves orphans, not errors.
func (httpserver *HttpServer) deleteEvent(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	eventID := chi.URLParam(r, "eventID")
	if err := httpserver.eventSrvc.DeleteEvent(r.Context(), eventID); err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	if err := httpserver.criteriaSrvc.DeleteForEvent(r.Context(), eventID); err != nil {
		logger.Warn("failed to delete criteria of deleted event", "event_id", eventID, "error", err)
	}
	if err := httpserver.awardSrvc.DeleteForEvent(r.Context(), eventID); err != nil {
		logger.Warn("failed to delete awards of deleted event", "event_id", eventID, "error", err)
	}
	if err := httpserver.sessionSrvc.DeleteForEvent(r.Context(), eventID); err != nil {
		logger.Warn("failed to delete scores of deleted event", "event_id", eventID, "error", err)
	}

	logger.Info("deleted event", "event_id", eventID)
	writeJsonSuccessResponse(w, nil)
}
