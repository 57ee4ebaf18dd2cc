package awards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kultoura/backend/criteria"
)

// Repo is the special awards document store. Get returns (nil, nil) when
// the event has no awards document yet.
type Repo interface {
	Get(ctx context.Context, eventID string) (*AwardSet, error)
	Save(ctx context.Context, set *AwardSet) error
	Delete(ctx context.Context, eventID string) error
}

type AwardSrvc struct {
	repo     Repo
	criteria *criteria.CriteriaSrvc
}

func NewAwardSrvc(repo Repo, criteriaSrvc *criteria.CriteriaSrvc) *AwardSrvc {
	return &AwardSrvc{repo: repo, criteria: criteriaSrvc}
}

// List returns the event's award rules, oldest first. An event without an
// awards document simply has no rules.
func (s *AwardSrvc) List(ctx context.Context, eventID string) ([]Award, error) {
	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading awards for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		return []Award{}, nil
	}
	return set.Awards, nil
}

// Add stores a new award rule. A "new"-type rule also injects its
// zero-weight criterion into the event's criterion set so judges score it
// alongside the main criteria.
func (s *AwardSrvc) Add(ctx context.Context, eventID string, award Award) (*Award, error) {
	if strings.TrimSpace(award.Name) == "" || strings.TrimSpace(award.Description) == "" {
		return nil, newErrAwardNameEmpty()
	}

	switch award.Type {
	case TypeExisting:
		if award.BasedOnCriterion == "" {
			return nil, newErrBasedOnCriterionMissing()
		}
	case TypeNew:
		if strings.TrimSpace(award.CriterionName) == "" || strings.TrimSpace(award.CriterionDescription) == "" {
			return nil, newErrCriterionDetailsMissing()
		}
	default:
		return nil, newErrAwardTypeInvalid()
	}

	award.ID = uuid.New().String()
	award.CreatedAt = time.Now()
	if award.MaxScore == 0 {
		award.MaxScore = 100
	}

	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading awards for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		set = &AwardSet{EventID: eventID}
	}
	set.Awards = append(set.Awards, award)
	set.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, set); err != nil {
		errMsg := fmt.Errorf("error saving awards for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	if award.Type == TypeNew {
		err := s.criteria.AppendSpecial(ctx, eventID, criteria.Criterion{
			ID:             criteria.SpecialCriterionID(award.ID),
			Name:           award.CriterionName,
			Description:    award.CriterionDescription,
			MaxScore:       award.MaxScore,
			SpecialAwardID: award.ID,
			AwardName:      award.Name,
		})
		if err != nil {
			return nil, err
		}
	}

	return &award, nil
}

// Remove deletes an award rule and, for "new"-type rules, the criterion it
// injected.
func (s *AwardSrvc) Remove(ctx context.Context, eventID string, awardID string) error {
	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading awards for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		return newErrAwardNotFound()
	}

	// Copy the matched rule by value; kept reuses the backing array, so a
	// pointer into set.Awards would read a later rule after the filter.
	var removed Award
	found := false
	kept := set.Awards[:0]
	for _, aw := range set.Awards {
		if aw.ID == awardID {
			removed = aw
			found = true
			continue
		}
		kept = append(kept, aw)
	}
	if !found {
		return newErrAwardNotFound()
	}
	set.Awards = kept
	set.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, set); err != nil {
		errMsg := fmt.Errorf("error saving awards for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}

	if removed.Type == TypeNew {
		if err := s.criteria.RemoveSpecial(ctx, eventID, awardID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteForEvent removes the event's awards document. Used by event
// deletion cleanup; absence is an expected outcome, not a fault.
func (s *AwardSrvc) DeleteForEvent(ctx context.Context, eventID string) error {
	return s.repo.Delete(ctx, eventID)
}
