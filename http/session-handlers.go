package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

// getSession opens (or resumes) the judge's scoring session for a
// participant and returns its current state.
func (httpserver *HttpServer) getSession(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	sess, err := httpserver.sessionSrvc.StartSession(r.Context(), judgeFromClaims(claims),
		chi.URLParam(r, "eventID"), chi.URLParam(r, "participantID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	if httpserver.metrics != nil {
		httpserver.metrics.SessionStarted()
	}
	writeJsonSuccessResponse(w, mapSessionResponse(sess))
}

func (httpserver *HttpServer) setScore(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	type setScoreRequest struct {
		Value float64 `json:"value"`
	}

	var req setScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.SetScore(r.Context(), judgeFromClaims(claims),
		chi.URLParam(r, "eventID"), chi.URLParam(r, "participantID"),
		chi.URLParam(r, "criterionID"), req.Value)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapSessionResponse(sess))
}

func (httpserver *HttpServer) submitScore(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	rec, err := httpserver.sessionSrvc.Submit(r.Context(), judgeFromClaims(claims),
		chi.URLParam(r, "eventID"), chi.URLParam(r, "participantID"))
	if httpserver.metrics != nil {
		httpserver.metrics.ScoreSubmitted(err == nil)
	}
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	type submitResponse struct {
		RecordID   string  `json:"record_id"`
		TotalScore float64 `json:"total_score"`
	}
	writeJsonSuccessResponse(w, submitResponse{
		RecordID:   rec.ID,
		TotalScore: rec.TotalScore,
	})
}

func (httpserver *HttpServer) unlockScore(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	sess, err := httpserver.sessionSrvc.Unlock(r.Context(), judgeFromClaims(claims),
		chi.URLParam(r, "eventID"), chi.URLParam(r, "participantID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapSessionResponse(sess))
}

// getJudgeProgress lists every participant's scored / draft / ready status
// for the requesting judge.
func (httpserver *HttpServer) getJudgeProgress(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	progress, err := httpserver.sessionSrvc.JudgeProgress(r.Context(), judgeFromClaims(claims),
		chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	resp := make([]ParticipantProgressResponse, len(progress))
	for i, p := range progress {
		resp[i] = ParticipantProgressResponse{
			ParticipantID:   p.ParticipantID,
			ParticipantName: p.ParticipantName,
			Status:          string(p.Status),
		}
	}
	writeJsonSuccessResponse(w, resp)
}
