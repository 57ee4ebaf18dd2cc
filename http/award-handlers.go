package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/awards"
)

func (httpserver *HttpServer) listAwards(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	rules, err := httpserver.awardSrvc.List(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	resp := make([]AwardResponse, len(rules))
	for i := range rules {
		resp[i] = mapAwardResponse(&rules[i])
	}
	writeJsonSuccessResponse(w, resp)
}

func (httpserver *HttpServer) addAward(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	type addAwardRequest struct {
		Name                 string `json:"name"`
		Description          string `json:"description"`
		Icon                 string `json:"icon"`
		Type                 string `json:"type"`
		BasedOnCriterion     string `json:"based_on_criterion"`
		CriterionName        string `json:"criterion_name"`
		CriterionDescription string `json:"criterion_description"`
		MaxScore             int    `json:"max_score"`
	}

	var req addAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eventID := chi.URLParam(r, "eventID")
	added, err := httpserver.awardSrvc.Add(r.Context(), eventID, awards.Award{
		Name:                 req.Name,
		Description:          req.Description,
		Icon:                 req.Icon,
		Type:                 awards.AwardType(req.Type),
		BasedOnCriterion:     req.BasedOnCriterion,
		CriterionName:        req.CriterionName,
		CriterionDescription: req.CriterionDescription,
		MaxScore:             req.MaxScore,
	})
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("added award rule", "event_id", eventID, "award_id", added.ID, "type", added.Type)
	writeJsonSuccessResponse(w, mapAwardResponse(added))
}

func (httpserver *HttpServer) removeAward(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	eventID := chi.URLParam(r, "eventID")
	awardID := chi.URLParam(r, "awardID")
	if err := httpserver.awardSrvc.Remove(r.Context(), eventID, awardID); err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("removed award rule", "event_id", eventID, "award_id", awardID)
	writeJsonSuccessResponse(w, nil)
}
