package scoring

import (
	"time"

	"github.com/kultoura/backend/criteria"
)

type SessionState string

const (
	// StateUnscored: no record and no draft, all values at the 0 default.
	StateUnscored SessionState = "unscored"
	// StateDrafting: at least one value set, nothing submitted yet.
	StateDrafting SessionState = "drafting"
	// StateSubmitted: the score record is stored; inputs are locked.
	StateSubmitted SessionState = "submitted"
	// StateEditing: explicitly unlocked after submission; the stored
	// record stays untouched until the next submit.
	StateEditing SessionState = "editing"
)

// Session is one judge's scoring session for one participant. State
// transitions live here; persistence is the service's job.
type Session struct {
	EventID    string
	EventTitle string

	JudgeID    string
	JudgeEmail string

	ParticipantID   string
	ParticipantName string

	// Criteria is the full list the judge scores against: the event's
	// main criteria plus any special-award criteria.
	Criteria []criteria.Criterion

	Scores     map[string]float64
	TotalScore float64

	State       SessionState
	RecordID    string
	SubmittedAt *time.Time

	submitInFlight bool
}

func (s *Session) criterion(criterionID string) *criteria.Criterion {
	for i := range s.Criteria {
		if s.Criteria[i].ID == criterionID {
			return &s.Criteria[i]
		}
	}
	return nil
}

// SetScore applies one criterion value. Values must be in [0,100];
// fractional values such as 0.5 are valid. A submitted session must be
// unlocked first.
func (s *Session) SetScore(criterionID string, value float64) error {
	if s.State == StateSubmitted {
		return newErrSessionLocked()
	}
	if value < 0 || value > 100 {
		return newErrScoreOutOfRange()
	}
	if s.criterion(criterionID) == nil {
		return newErrUnknownCriterion(criterionID)
	}

	s.Scores[criterionID] = value
	s.TotalScore = WeightedTotal(s.Scores, s.Criteria)
	if s.State == StateUnscored {
		s.State = StateDrafting
	}
	return nil
}

// Unlock re-enables editing of a submitted score. The stored record is
// untouched until the judge submits again.
func (s *Session) Unlock() error {
	if s.State != StateSubmitted {
		return newErrSessionNotSubmitted()
	}
	s.State = StateEditing
	return nil
}

// validateSubmittable checks the submit guard: every main criterion must
// carry a value strictly greater than 0, since 0 is indistinguishable
// from "not yet scored". Special-award criteria may stay at 0.
func (s *Session) validateSubmittable() error {
	switch s.State {
	case StateSubmitted:
		return newErrSessionLocked()
	case StateUnscored:
		return newErrNotAllCriteriaScored()
	}
	for _, c := range s.Criteria {
		if c.IsSpecialAward {
			continue
		}
		if s.Scores[c.ID] <= 0 {
			return newErrNotAllCriteriaScored()
		}
	}
	return nil
}

func (s *Session) markSubmitted(rec *ScoreRecord) {
	s.State = StateSubmitted
	s.RecordID = rec.ID
	submittedAt := rec.SubmittedAt
	s.SubmittedAt = &submittedAt
	s.TotalScore = rec.TotalScore
}
