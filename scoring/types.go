package scoring

import (
	"fmt"
	"time"

	"github.com/kultoura/backend/criteria"
)

// ScoreRecord is the single submitted score of one judge for one
// participant in one event. It is created on first submission and updated
// in place on every later submission; uniqueness of the
// (event, judge, participant) key is enforced by query-before-write.
type ScoreRecord struct {
	ID string

	EventID    string
	EventTitle string

	JudgeID    string
	JudgeEmail string

	ParticipantID   string
	ParticipantName string

	// Scores maps criterion id to the given value in [0,100]. Special
	// award criteria appear here too but never contribute to TotalScore.
	Scores map[string]float64

	// TotalScore is derived from Scores and the main criteria weights;
	// it is stored for convenience but never trusted independently.
	TotalScore float64

	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// WeightedTotal computes the main weighted score: the sum over main
// criteria of value * weight / 100. Special-award criteria are excluded.
func WeightedTotal(scores map[string]float64, criterionSet []criteria.Criterion) float64 {
	total := 0.0
	for _, c := range criterionSet {
		if c.IsSpecialAward {
			continue
		}
		total += scores[c.ID] * float64(c.PercentageWeight) / 100
	}
	return total
}

// DraftKey builds the composite key under which a judge's unsubmitted
// scores for a participant are cached.
func DraftKey(eventID, judgeID, participantID string) string {
	return fmt.Sprintf("draft_%s_%s_%s", eventID, judgeID, participantID)
}

// ParticipantProgress is the derived scoring status of one participant as
// seen by one judge on the free-roam selection screen. The status is
// computed from record and draft presence, never stored.
type ParticipantProgress struct {
	ParticipantID   string
	ParticipantName string
	Status          ProgressStatus
}

type ProgressStatus string

const (
	ProgressScored ProgressStatus = "scored" // score record exists
	ProgressDraft  ProgressStatus = "draft"  // only a non-empty draft exists
	ProgressReady  ProgressStatus = "ready"  // neither exists
)
