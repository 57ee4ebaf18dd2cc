package results

import (
	"context"
	"errors"
	"time"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/s3bucket"
	"github.com/kultoura/backend/scoring"
	"github.com/kultoura/backend/srvcerror"
)

type ResultsSrvc struct {
	events   *event.EventSrvc
	criteria *criteria.CriteriaSrvc
	awards   *awards.AwardSrvc
	scoring  *scoring.SessionSrvc

	exportBucket *s3bucket.S3Bucket // nil disables CSV exports
}

func NewResultsSrvc(
	eventSrvc *event.EventSrvc,
	criteriaSrvc *criteria.CriteriaSrvc,
	awardSrvc *awards.AwardSrvc,
	scoringSrvc *scoring.SessionSrvc,
	exportBucket *s3bucket.S3Bucket,
) *ResultsSrvc {
	return &ResultsSrvc{
		events:       eventSrvc,
		criteria:     criteriaSrvc,
		awards:       awardSrvc,
		scoring:      scoringSrvc,
		exportBucket: exportBucket,
	}
}

// GetResults aggregates the event's submitted scores into the ranked
// leaderboard and resolves its special awards. An event with explicit
// award rules uses those; an event without any falls back to the legacy
// name-matched defaults.
func (s *ResultsSrvc) GetResults(ctx context.Context, eventID string) (*EventResults, error) {
	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	records, err := s.scoring.ListEventScores(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ranked := Aggregate(records)

	judges := make(map[string]bool)
	for _, rec := range records {
		judges[rec.JudgeID] = true
	}

	res := &EventResults{
		EventID:     ev.ID,
		EventTitle:  ev.Title,
		Results:     ranked,
		Awards:      []awards.AwardResult{},
		JudgeCount:  len(judges),
		GeneratedAt: time.Now(),
	}

	// Results stay meaningful without a criteria document; only the award
	// resolution needs one. Store failures still surface.
	set, err := s.criteria.Get(ctx, eventID)
	if err != nil {
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) && srvcErr.ErrorCode() == criteria.ErrCodeCriteriaNotFound {
			return res, nil
		}
		return nil, err
	}

	standings := make([]awards.ParticipantStanding, len(ranked))
	for i, r := range ranked {
		standings[i] = awards.ParticipantStanding{
			ParticipantID:     r.ParticipantID,
			ParticipantName:   r.ParticipantName,
			CriterionAverages: r.CriterionAverages,
		}
	}

	rules, err := s.awards.List(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(rules) > 0 {
		res.Awards = awards.Resolve(rules, set.Criteria, standings)
	} else {
		res.Awards = awards.DefaultAwards(set.Criteria, standings)
	}
	return res, nil
}
