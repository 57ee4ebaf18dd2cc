package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
)

// ScoreRepo is the submitted score record store. GetByKey returns
// (nil, nil) when the judge has not submitted for the participant yet.
type ScoreRepo interface {
	GetByKey(ctx context.Context, eventID, judgeID, participantID string) (*ScoreRecord, error)
	Save(ctx context.Context, rec *ScoreRecord) error
	ListByEvent(ctx context.Context, eventID string) ([]ScoreRecord, error)
	ListByEventJudge(ctx context.Context, eventID, judgeID string) ([]ScoreRecord, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}

// Judge identifies the authenticated judge driving a session.
type Judge struct {
	ID    string
	Email string
}

// SessionSrvc owns the in-memory scoring sessions of all judges. Sessions
// are keyed by DraftKey, so one judge has at most one session per
// participant per event.
type SessionSrvc struct {
	events   *event.EventSrvc
	criteria *criteria.CriteriaSrvc
	repo     ScoreRepo
	drafts   DraftStore
	feed     *ScoreFeed // nil disables the submission feed

	lock     sync.Mutex
	sessions map[string]*Session
}

func NewSessionSrvc(
	eventSrvc *event.EventSrvc,
	criteriaSrvc *criteria.CriteriaSrvc,
	repo ScoreRepo,
	drafts DraftStore,
	feed *ScoreFeed,
) *SessionSrvc {
	return &SessionSrvc{
		events:   eventSrvc,
		criteria: criteriaSrvc,
		repo:     repo,
		drafts:   drafts,
		feed:     feed,
		sessions: make(map[string]*Session),
	}
}

// StartSession opens (or resumes) the judge's session for a participant.
// A stored record loads as submitted, a cached draft as drafting and a
// blank slate as unscored. In sequential mode only the current performer
// may be opened.
func (s *SessionSrvc) StartSession(ctx context.Context, judge Judge, eventID string, participantID string) (*Session, error) {
	key := DraftKey(eventID, judge.ID, participantID)

	s.lock.Lock()
	if sess, ok := s.sessions[key]; ok {
		s.lock.Unlock()
		return sess, nil
	}
	s.lock.Unlock()

	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ev.ActiveForJudging() {
		return nil, newErrEventNotActive()
	}
	p := ev.Participant(participantID)
	if p == nil {
		return nil, newErrParticipantNotFound()
	}
	if ev.JudgingMode == event.ModeSequential && ev.CurrentPerformer != participantID {
		return nil, newErrNotCurrentPerformer()
	}

	set, err := s.criteria.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if sum := criteria.MainWeightSum(set.Criteria); sum != 100 {
		return nil, newErrCriteriaNotUsable(sum)
	}

	sess := &Session{
		EventID:         eventID,
		EventTitle:      ev.Title,
		JudgeID:         judge.ID,
		JudgeEmail:      judge.Email,
		ParticipantID:   participantID,
		ParticipantName: p.Name,
		Criteria:        set.Criteria,
		Scores:          make(map[string]float64, len(set.Criteria)),
		State:           StateUnscored,
	}
	for _, c := range set.Criteria {
		sess.Scores[c.ID] = 0
	}

	rec, err := s.repo.GetByKey(ctx, eventID, judge.ID, participantID)
	if err != nil {
		errMsg := fmt.Errorf("error reading score record %s: %w", key, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if rec != nil {
		for id, v := range rec.Scores {
			sess.Scores[id] = v
		}
		sess.markSubmitted(rec)
	} else {
		draft, err := s.drafts.Get(ctx, key)
		if err != nil {
			slog.Warn("failed to read draft", "key", key, "error", err)
		}
		if len(draft) > 0 {
			for id, v := range draft {
				if _, known := sess.Scores[id]; known {
					sess.Scores[id] = v
				}
			}
			sess.TotalScore = WeightedTotal(sess.Scores, sess.Criteria)
			sess.State = StateDrafting
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if existing, ok := s.sessions[key]; ok {
		return existing, nil
	}
	s.sessions[key] = sess
	return sess, nil
}

// GetSession returns the open session, if any.
func (s *SessionSrvc) GetSession(eventID, judgeID, participantID string) (*Session, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	sess, ok := s.sessions[DraftKey(eventID, judgeID, participantID)]
	if !ok {
		return nil, newErrNoActiveSession()
	}
	return sess, nil
}

// SetScore records one criterion value in the session and refreshes the
// draft cache so the work survives the judge navigating away.
func (s *SessionSrvc) SetScore(ctx context.Context, judge Judge, eventID, participantID, criterionID string, value float64) (*Session, error) {
	key := DraftKey(eventID, judge.ID, participantID)

	s.lock.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		s.lock.Unlock()
		return nil, newErrNoActiveSession()
	}
	if err := sess.SetScore(criterionID, value); err != nil {
		s.lock.Unlock()
		return nil, err
	}
	draft := make(map[string]float64, len(sess.Scores))
	for id, v := range sess.Scores {
		draft[id] = v
	}
	s.lock.Unlock()

	if err := s.drafts.Set(ctx, key, draft); err != nil {
		slog.Warn("failed to cache draft", "key", key, "error", err)
	}
	return sess, nil
}

// Submit persists the session's scores as the judge's single score record
// for this participant, creating it on first submission and updating it in
// place afterwards. The session lock is not held during storage IO; a
// per-session flag rejects concurrent submits instead.
func (s *SessionSrvc) Submit(ctx context.Context, judge Judge, eventID, participantID string) (*ScoreRecord, error) {
	key := DraftKey(eventID, judge.ID, participantID)

	s.lock.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		s.lock.Unlock()
		return nil, newErrNoActiveSession()
	}
	if err := sess.validateSubmittable(); err != nil {
		s.lock.Unlock()
		return nil, err
	}
	if sess.submitInFlight {
		s.lock.Unlock()
		return nil, newErrSubmitInProgress()
	}
	sess.submitInFlight = true

	scores := make(map[string]float64, len(sess.Scores))
	for id, v := range sess.Scores {
		scores[id] = v
	}
	rec := &ScoreRecord{
		EventID:         sess.EventID,
		EventTitle:      sess.EventTitle,
		JudgeID:         sess.JudgeID,
		JudgeEmail:      sess.JudgeEmail,
		ParticipantID:   sess.ParticipantID,
		ParticipantName: sess.ParticipantName,
		Scores:          scores,
		TotalScore:      WeightedTotal(scores, sess.Criteria),
	}
	s.lock.Unlock()

	clearInFlight := func() {
		s.lock.Lock()
		sess.submitInFlight = false
		s.lock.Unlock()
	}

	existing, err := s.repo.GetByKey(ctx, eventID, judge.ID, participantID)
	if err != nil {
		clearInFlight()
		errMsg := fmt.Errorf("error reading score record %s: %w", key, err)
		return nil, newErrSubmitFailed().SetDebug(errMsg)
	}
	now := time.Now()
	if existing != nil {
		rec.ID = existing.ID
		rec.SubmittedAt = existing.SubmittedAt
	} else {
		rec.ID = uuid.New().String()
		rec.SubmittedAt = now
	}
	rec.UpdatedAt = now

	if err := s.repo.Save(ctx, rec); err != nil {
		clearInFlight()
		errMsg := fmt.Errorf("error saving score record %s: %w", key, err)
		return nil, newErrSubmitFailed().SetDebug(errMsg)
	}

	if err := s.drafts.Clear(ctx, key); err != nil {
		slog.Warn("failed to clear draft after submit", "key", key, "error", err)
	}
	if s.feed != nil {
		go func(rec ScoreRecord) {
			if err := s.feed.Publish(context.Background(), &rec); err != nil {
				slog.Warn("failed to publish score to feed", "record_id", rec.ID, "error", err)
			}
		}(*rec)
	}

	s.lock.Lock()
	sess.markSubmitted(rec)
	sess.submitInFlight = false
	s.lock.Unlock()

	slog.Info("score submitted",
		"event_id", eventID,
		"judge_id", judge.ID,
		"participant_id", participantID,
		"total", rec.TotalScore,
	)
	return rec, nil
}

// Unlock reopens a submitted score for editing. The stored record stays
// as-is until the judge submits again.
func (s *SessionSrvc) Unlock(ctx context.Context, judge Judge, eventID, participantID string) (*Session, error) {
	sess, err := s.StartSession(ctx, judge, eventID, participantID)
	if err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if err := sess.Unlock(); err != nil {
		return nil, err
	}
	return sess, nil
}

// JudgeProgress reports every participant's scoring status for one judge:
// scored when a record exists, draft when only cached work exists, ready
// otherwise. Used by the free-roam selection screen.
func (s *SessionSrvc) JudgeProgress(ctx context.Context, judge Judge, eventID string) ([]ParticipantProgress, error) {
	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByEventJudge(ctx, eventID, judge.ID)
	if err != nil {
		errMsg := fmt.Errorf("error listing scores for event %s judge %s: %w", eventID, judge.ID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	scored := make(map[string]bool, len(records))
	for _, rec := range records {
		scored[rec.ParticipantID] = true
	}

	progress := make([]ParticipantProgress, 0, len(ev.Participants))
	for _, p := range ev.Participants {
		status := ProgressReady
		if scored[p.ID] {
			status = ProgressScored
		} else {
			hasDraft, err := s.drafts.Has(ctx, DraftKey(eventID, judge.ID, p.ID))
			if err != nil {
				slog.Warn("failed to check draft", "participant_id", p.ID, "error", err)
			}
			if hasDraft {
				status = ProgressDraft
			}
		}
		progress = append(progress, ParticipantProgress{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			Status:          status,
		})
	}
	return progress, nil
}

// DeleteForEvent drops score records and open sessions of an event. Used
// by event deletion cleanup.
func (s *SessionSrvc) DeleteForEvent(ctx context.Context, eventID string) error {
	if err := s.repo.DeleteByEvent(ctx, eventID); err != nil {
		errMsg := fmt.Errorf("error deleting scores for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for key, sess := range s.sessions {
		if sess.EventID == eventID {
			delete(s.sessions, key)
		}
	}
	return nil
}

// ListEventScores exposes the raw submitted records of an event, used by
// the results aggregation.
func (s *SessionSrvc) ListEventScores(ctx context.Context, eventID string) ([]ScoreRecord, error) {
	records, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error listing scores for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return records, nil
}
