package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/criteria"
)

func (httpserver *HttpServer) getCriteria(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAuth(w, r); claims == nil {
		return
	}

	set, err := httpserver.criteriaSrvc.Get(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapCriterionSetResponse(set))
}

// saveCriteria replaces the event's main criteria. Special-award criteria
// are managed through award rules and survive this write untouched.
func (httpserver *HttpServer) saveCriteria(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	type criterionRequest struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Description      string `json:"description"`
		PercentageWeight int    `json:"percentage_weight"`
		MaxScore         int    `json:"max_score"`
	}
	type saveCriteriaRequest struct {
		Criteria []criterionRequest `json:"criteria"`
	}

	var req saveCriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eventID := chi.URLParam(r, "eventID")
	ev, err := httpserver.eventSrvc.GetEvent(r.Context(), eventID)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	main := make([]criteria.Criterion, len(req.Criteria))
	for i, c := range req.Criteria {
		maxScore := c.MaxScore
		if maxScore == 0 {
			maxScore = 100
		}
		main[i] = criteria.Criterion{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			PercentageWeight: c.PercentageWeight,
			MaxScore:         maxScore,
		}
	}

	set, err := httpserver.criteriaSrvc.Save(r.Context(), eventID, ev.Title, main)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("saved criteria", "event_id", eventID, "criterion_count", len(set.Criteria))
	writeJsonSuccessResponse(w, mapCriterionSetResponse(set))
}
