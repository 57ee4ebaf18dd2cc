package results

import (
	"time"

	"github.com/kultoura/backend/awards"
)

// JudgeScore is one judge's submitted total for a participant.
type JudgeScore struct {
	JudgeID    string
	JudgeEmail string
	TotalScore float64
}

// ParticipantResult is the aggregated standing of one participant.
type ParticipantResult struct {
	ParticipantID   string
	ParticipantName string

	// AverageScore is the mean of the judges' weighted totals.
	AverageScore float64
	JudgeCount   int
	Rank         int

	// CriterionAverages averages each criterion over the judges that gave
	// it a non-zero value. A criterion nobody scored averages to 0.
	CriterionAverages map[string]float64

	JudgeScores []JudgeScore
}

// EventResults is the full results view of one event.
type EventResults struct {
	EventID    string
	EventTitle string

	Results []ParticipantResult
	Awards  []awards.AwardResult

	// JudgeCount is the number of distinct judges that submitted at least
	// one score for the event.
	JudgeCount  int
	GeneratedAt time.Time
}
