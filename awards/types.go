package awards

import "time"

// AwardType says how an award rule binds to a scoring criterion.
type AwardType string

const (
	// TypeExisting awards the highest average on a main criterion.
	TypeExisting AwardType = "existing"
	// TypeNew injects a dedicated zero-weight criterion for the award.
	TypeNew AwardType = "new"
)

// Award is a special award rule defined by an administrator.
type Award struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Type        AwardType

	// BasedOnCriterion references a main criterion id (TypeExisting only).
	BasedOnCriterion string

	// CriterionName and CriterionDescription describe the injected
	// criterion (TypeNew only).
	CriterionName        string
	CriterionDescription string

	MaxScore  int
	CreatedAt time.Time
}

// AwardSet is the special awards document of a single event.
type AwardSet struct {
	EventID   string
	Awards    []Award
	UpdatedAt time.Time
}

// ParticipantStanding is the slice of aggregated results the resolver
// needs: one participant with their per-criterion average scores.
type ParticipantStanding struct {
	ParticipantID     string
	ParticipantName   string
	CriterionAverages map[string]float64
}

// WinnerRef identifies an award winner and the average that won it.
type WinnerRef struct {
	ParticipantID   string
	ParticipantName string
	AverageScore    float64
}

// AwardResult is one resolved award. Winner is nil while no participant
// has a non-zero average on the target criterion ("not yet determined").
type AwardResult struct {
	AwardID       string
	AwardName     string
	Description   string
	Icon          string
	CriterionID   string
	CriterionName string
	Winner        *WinnerRef
}
