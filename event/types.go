package event

import "time"

// JudgingMode controls which participant a judge may score.
type JudgingMode string

const (
	// ModeSequential: the admin marks one performer at a time and judges
	// may only score that participant.
	ModeSequential JudgingMode = "sequential"
	// ModeFreeRoam: judges pick any participant at any time.
	ModeFreeRoam JudgingMode = "free-roam"
)

type ParticipantStatus string

const (
	StatusWaiting    ParticipantStatus = "waiting"
	StatusPerforming ParticipantStatus = "performing"
	StatusCompleted  ParticipantStatus = "completed"
)

type Participant struct {
	ID      string
	Name    string
	Status  ParticipantStatus
	AddedAt time.Time
}

type Event struct {
	ID              string
	Title           string
	Description     string
	Category        string
	Venue           string
	MaxParticipants int
	Participants    []Participant

	// CurrentPerformer is the participant id being judged in sequential
	// mode, empty when nobody is on stage.
	CurrentPerformer string

	AdminActivated bool
	ShowToJudges   bool
	JudgingMode    JudgingMode

	PosterKey string
	PosterURL string

	StartTime *time.Time
	CreatedAt time.Time
}

// Participant looks up a participant by id, nil when absent.
func (e *Event) Participant(participantID string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].ID == participantID {
			return &e.Participants[i]
		}
	}
	return nil
}

// ActiveForJudging reports whether judges should see this event.
func (e *Event) ActiveForJudging() bool {
	return e.AdminActivated && e.ShowToJudges
}
