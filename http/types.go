package http

import (
	"time"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/results"
	"github.com/kultoura/backend/scoring"
	"github.com/kultoura/backend/user"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role"`
}

func mapUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

type ParticipantResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	AddedAt time.Time `json:"added_at"`
}

type EventResponse struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	Category         string                `json:"category,omitempty"`
	Venue            string                `json:"venue,omitempty"`
	MaxParticipants  int                   `json:"max_participants,omitempty"`
	Participants     []ParticipantResponse `json:"participants"`
	CurrentPerformer string                `json:"current_performer,omitempty"`
	AdminActivated   bool                  `json:"admin_activated"`
	ShowToJudges     bool                  `json:"show_to_judges"`
	JudgingMode      string                `json:"judging_mode"`
	PosterURL        string                `json:"poster_url,omitempty"`
	StartTime        *time.Time            `json:"start_time,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

func mapEventResponse(ev *event.Event) EventResponse {
	participants := make([]ParticipantResponse, len(ev.Participants))
	for i, p := range ev.Participants {
		participants[i] = ParticipantResponse{
			ID:      p.ID,
			Name:    p.Name,
			Status:  string(p.Status),
			AddedAt: p.AddedAt,
		}
	}
	return EventResponse{
		ID:               ev.ID,
		Title:            ev.Title,
		Description:      ev.Description,
		Category:         ev.Category,
		Venue:            ev.Venue,
		MaxParticipants:  ev.MaxParticipants,
		Participants:     participants,
		CurrentPerformer: ev.CurrentPerformer,
		AdminActivated:   ev.AdminActivated,
		ShowToJudges:     ev.ShowToJudges,
		JudgingMode:      string(ev.JudgingMode),
		PosterURL:        ev.PosterURL,
		StartTime:        ev.StartTime,
		CreatedAt:        ev.CreatedAt,
	}
}

func mapEventListResponse(events []event.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i := range events {
		resp[i] = mapEventResponse(&events[i])
	}
	return resp
}

type CriterionResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	PercentageWeight int    `json:"percentage_weight"`
	MaxScore         int    `json:"max_score"`
	IsSpecialAward   bool   `json:"is_special_award"`
	SpecialAwardID   string `json:"special_award_id,omitempty"`
	AwardName        string `json:"award_name,omitempty"`
}

func mapCriterionResponse(c *criteria.Criterion) CriterionResponse {
	return CriterionResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		PercentageWeight: c.PercentageWeight,
		MaxScore:         c.MaxScore,
		IsSpecialAward:   c.IsSpecialAward,
		SpecialAwardID:   c.SpecialAwardID,
		AwardName:        c.AwardName,
	}
}

type CriterionSetResponse struct {
	EventID         string              `json:"event_id"`
	EventTitle      string              `json:"event_title,omitempty"`
	Criteria        []CriterionResponse `json:"criteria"`
	TotalPercentage int                 `json:"total_percentage"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func mapCriterionSetResponse(set *criteria.CriterionSet) CriterionSetResponse {
	list := make([]CriterionResponse, len(set.Criteria))
	for i := range set.Criteria {
		list[i] = mapCriterionResponse(&set.Criteria[i])
	}
	return CriterionSetResponse{
		EventID:         set.EventID,
		EventTitle:      set.EventTitle,
		Criteria:        list,
		TotalPercentage: set.TotalPercentage,
		UpdatedAt:       set.UpdatedAt,
	}
}

type AwardResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Icon                 string    `json:"icon,omitempty"`
	Type                 string    `json:"type"`
	BasedOnCriterion     string    `json:"based_on_criterion,omitempty"`
	CriterionName        string    `json:"criterion_name,omitempty"`
	CriterionDescription string    `json:"criterion_description,omitempty"`
	MaxScore             int       `json:"max_score"`
	CreatedAt            time.Time `json:"created_at"`
}

func mapAwardResponse(a *awards.Award) AwardResponse {
	return AwardResponse{
		ID:                   a.ID,
		Name:                 a.Name,
		Description:          a.Description,
		Icon:                 a.Icon,
		Type:                 string(a.Type),
		BasedOnCriterion:     a.BasedOnCriterion,
		CriterionName:        a.CriterionName,
		CriterionDescription: a.CriterionDescription,
		MaxScore:             a.MaxScore,
		CreatedAt:            a.CreatedAt,
	}
}

type SessionResponse struct {
	EventID         string              `json:"event_id"`
	EventTitle      string              `json:"event_title"`
	ParticipantID   string              `json:"participant_id"`
	ParticipantName string              `json:"participant_name"`
	Criteria        []CriterionResponse `json:"criteria"`
	Scores          map[string]float64  `json:"scores"`
	TotalScore      float64             `json:"total_score"`
	State           string              `json:"state"`
	SubmittedAt     *time.Time          `json:"submitted_at,omitempty"`
}

func mapSessionResponse(sess *scoring.Session) SessionResponse {
	list := make([]CriterionResponse, len(sess.Criteria))
	for i := range sess.Criteria {
		list[i] = mapCriterionResponse(&sess.Criteria[i])
	}
	scores := make(map[string]float64, len(sess.Scores))
	for id, v := range sess.Scores {
		scores[id] = v
	}
	return SessionResponse{
		EventID:         sess.EventID,
		EventTitle:      sess.EventTitle,
		ParticipantID:   sess.ParticipantID,
		ParticipantName: sess.ParticipantName,
		Criteria:        list,
		Scores:          scores,
		TotalScore:      sess.TotalScore,
		State:           string(sess.State),
		SubmittedAt:     sess.SubmittedAt,
	}
}

type ParticipantProgressResponse struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	Status          string `json:"status"`
}

type JudgeScoreResponse struct {
	JudgeEmail string  `json:"judge_email"`
	TotalScore float64 `json:"total_score"`
}

type ParticipantResultResponse struct {
	ParticipantID     string               `json:"participant_id"`
	ParticipantName   string               `json:"participant_name"`
	AverageScore      float64              `json:"average_score"`
	JudgeCount        int                  `json:"judge_count"`
	Rank              int                  `json:"rank"`
	CriterionAverages map[string]float64   `json:"criterion_averages"`
	JudgeScores       []JudgeScoreResponse `json:"judge_scores"`
}

type AwardWinnerResponse struct {
	ParticipantID   string  `json:"participant_id"`
	ParticipantName string  `json:"participant_name"`
	AverageScore    float64 `json:"average_score"`
}

type AwardResultResponse struct {
	AwardID       string               `json:"award_id,omitempty"`
	AwardName     string               `json:"award_name"`
	Description   string               `json:"description"`
	Icon          string               `json:"icon,omitempty"`
	CriterionID   string               `json:"criterion_id"`
	CriterionName string               `json:"criterion_name"`
	Winner        *AwardWinnerResponse `json:"winner"`
}

type EventResultsResponse struct {
	EventID     string                      `json:"event_id"`
	EventTitle  string                      `json:"event_title"`
	Results     []ParticipantResultResponse `json:"results"`
	Awards      []AwardResultResponse       `json:"awards"`
	JudgeCount  int                         `json:"judge_count"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

func mapEventResultsResponse(res *results.EventResults) EventResultsResponse {
	ranked := make([]ParticipantResultResponse, len(res.Results))
	for i, r := range res.Results {
		judgeScores := make([]JudgeScoreResponse, len(r.JudgeScores))
		for j, js := range r.JudgeScores {
			judgeScores[j] = JudgeScoreResponse{
				JudgeEmail: js.JudgeEmail,
				TotalScore: js.TotalScore,
			}
		}
		ranked[i] = ParticipantResultResponse{
			ParticipantID:     r.ParticipantID,
			ParticipantName:   r.ParticipantName,
			AverageScore:      r.AverageScore,
			JudgeCount:        r.JudgeCount,
			Rank:              r.Rank,
			CriterionAverages: r.CriterionAverages,
			JudgeScores:       judgeScores,
		}
	}

	awardResults := make([]AwardResultResponse, len(res.Awards))
	for i, aw := range res.Awards {
		var winner *AwardWinnerResponse
		if aw.Winner != nil {
			winner = &AwardWinnerResponse{
				ParticipantID:   aw.Winner.ParticipantID,
				ParticipantName: aw.Winner.ParticipantName,
				AverageScore:    aw.Winner.AverageScore,
			}
		}
		awardResults[i] = AwardResultResponse{
			AwardID:       aw.AwardID,
			AwardName:     aw.AwardName,
			Description:   aw.Description,
			Icon:          aw.Icon,
			CriterionID:   aw.CriterionID,
			CriterionName: aw.CriterionName,
			Winner:        winner,
		}
	}

	return EventResultsResponse{
		EventID:     res.EventID,
		EventTitle:  res.EventTitle,
		Results:     ranked,
		Awards:      awardResults,
		JudgeCount:  res.JudgeCount,
		GeneratedAt: res.GeneratedAt,
	}
}
