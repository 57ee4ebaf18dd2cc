package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kultoura/backend/s3bucket"
)

// Repo is the events document store. Get returns (nil, nil) when the
// event does not exist.
type Repo interface {
	Get(ctx context.Context, eventID string) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, ev *Event) error
	Delete(ctx context.Context, eventID string) error
}

type EventSrvc struct {
	repo         Repo
	posterBucket *s3bucket.S3Bucket // nil disables poster uploads
}

func NewEventSrvc(repo Repo, posterBucket *s3bucket.S3Bucket) *EventSrvc {
	return &EventSrvc{repo: repo, posterBucket: posterBucket}
}

type CreateEventParams struct {
	Title           string
	Description     string
	Category        string
	Venue           string
	MaxParticipants int
	JudgingMode     JudgingMode
	StartTime       *time.Time
}

func (s *EventSrvc) CreateEvent(ctx context.Context, p *CreateEventParams) (*Event, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrEventTitleEmpty()
	}
	if p.JudgingMode == "" {
		p.JudgingMode = ModeSequential
	}
	if p.JudgingMode != ModeSequential && p.JudgingMode != ModeFreeRoam {
		return nil, newErrJudgingModeInvalid()
	}

	ev := &Event{
		ID:              uuid.New().String(),
		Title:           p.Title,
		Description:     p.Description,
		Category:        p.Category,
		Venue:           p.Venue,
		MaxParticipants: p.MaxParticipants,
		Participants:    []Participant{},
		JudgingMode:     p.JudgingMode,
		StartTime:       p.StartTime,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

func (s *EventSrvc) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	ev, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if ev == nil {
		return nil, newErrEventNotFound()
	}
	return ev, nil
}

func (s *EventSrvc) ListEvents(ctx context.Context) ([]Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing events: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return events, nil
}

// ListActiveEvents returns the events judges should currently see.
func (s *EventSrvc) ListActiveEvents(ctx context.Context) ([]Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]Event, 0, 1)
	for _, ev := range events {
		if ev.ActiveForJudging() {
			active = append(active, ev)
		}
	}
	return active, nil
}

// DeleteEvent removes the event document itself. Cleanup of the event's
// criteria, awards and score documents is best-effort and owned by the
// caller, mirroring how the documents are created independently.
func (s *EventSrvc) DeleteEvent(ctx context.Context, eventID string) error {
	ev, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if ev == nil {
		return newErrEventNotFound()
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		errMsg := fmt.Errorf("error deleting event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if ev.PosterKey != "" && s.posterBucket != nil {
		if err := s.posterBucket.Delete(ev.PosterKey); err != nil {
			slog.Warn("failed to delete poster of deleted event", "event_id", eventID, "error", err)
		}
	}
	return nil
}

// ActivateEvent makes an event live for judges. At most one event should
// be active at a time, enforced as two best-effort phases: deactivate
// every other active event, then activate the target. There is no
// transaction across the phases; a crash in between can briefly leave no
// event active. Acceptable for this domain.
func (s *EventSrvc) ActivateEvent(ctx context.Context, eventID string) (*Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	var target *Event
	for i := range events {
		if events[i].ID == eventID {
			target = &events[i]
			continue
		}
		if events[i].AdminActivated {
			events[i].AdminActivated = false
			events[i].ShowToJudges = false
			if err := s.repo.Save(ctx, &events[i]); err != nil {
				errMsg := fmt.Errorf("error deactivating event %s: %w", events[i].ID, err)
				return nil, newErrInternalSE().SetDebug(errMsg)
			}
			slog.Info("deactivated event", "event_id", events[i].ID, "title", events[i].Title)
		}
	}
	if target == nil {
		return nil, newErrEventNotFound()
	}

	target.AdminActivated = true
	target.ShowToJudges = true
	if err := s.repo.Save(ctx, target); err != nil {
		errMsg := fmt.Errorf("error activating event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	slog.Info("activated event", "event_id", target.ID, "title", target.Title)
	return target, nil
}

func (s *EventSrvc) DeactivateEvent(ctx context.Context, eventID string) (*Event, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ev.AdminActivated = false
	ev.ShowToJudges = false
	ev.CurrentPerformer = ""
	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error deactivating event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

func (s *EventSrvc) AddParticipant(ctx context.Context, eventID string, name string) (*Event, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newErrParticipantNameEmpty()
	}
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.MaxParticipants > 0 && len(ev.Participants) >= ev.MaxParticipants {
		return nil, newErrEventFull()
	}

	ev.Participants = append(ev.Participants, Participant{
		ID:      uuid.New().String(),
		Name:    name,
		Status:  StatusWaiting,
		AddedAt: time.Now(),
	})
	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

func (s *EventSrvc) RemoveParticipant(ctx context.Context, eventID string, participantID string) (*Event, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := ev.Participants[:0]
	for _, p := range ev.Participants {
		if p.ID == participantID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil, newErrParticipantNotFound()
	}
	ev.Participants = kept
	if ev.CurrentPerformer == participantID {
		ev.CurrentPerformer = ""
	}

	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

// SetCurrentPerformer puts a participant on stage in sequential mode. The
// previous performer is marked completed. An empty participantID clears
// the stage. Existing score records are never touched.
func (s *EventSrvc) SetCurrentPerformer(ctx context.Context, eventID string, participantID string) (*Event, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if participantID != "" && ev.Participant(participantID) == nil {
		return nil, newErrParticipantNotFound()
	}

	for i := range ev.Participants {
		switch {
		case ev.Participants[i].ID == participantID:
			ev.Participants[i].Status = StatusPerforming
		case ev.Participants[i].Status == StatusPerforming:
			ev.Participants[i].Status = StatusCompleted
		}
	}
	ev.CurrentPerformer = participantID

	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

func (s *EventSrvc) SetParticipantStatus(ctx context.Context, eventID string, participantID string, status ParticipantStatus) (*Event, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	p := ev.Participant(participantID)
	if p == nil {
		return nil, newErrParticipantNotFound()
	}
	p.Status = status
	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}
