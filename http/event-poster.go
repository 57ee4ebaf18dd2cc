package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

const maxPosterUploadBytes = 10 << 20 // 10 MiB

// uploadPoster accepts a multipart form with a "poster" file field.
func (httpserver *HttpServer) uploadPoster(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	if err := r.ParseMultipartForm(maxPosterUploadBytes); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("poster")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPosterUploadBytes))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ev, err := httpserver.eventSrvc.UploadPoster(r.Context(), chi.URLParam(r, "eventID"), content)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("uploaded event poster", "event_id", ev.ID, "poster_key", ev.PosterKey)
	writeJsonSuccessResponse(w, mapEventResponse(ev))
}
