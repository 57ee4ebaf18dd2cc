package criteria

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Repo is the criteria document store. Get returns (nil, nil) when the
// event has no criteria document yet.
type Repo interface {
	Get(ctx context.Context, eventID string) (*CriterionSet, error)
	Save(ctx context.Context, set *CriterionSet) error
	Delete(ctx context.Context, eventID string) error
}

type CriteriaSrvc struct {
	repo Repo
}

func NewCriteriaSrvc(repo Repo) *CriteriaSrvc {
	return &CriteriaSrvc{repo: repo}
}

// Get returns the event's criterion set.
func (s *CriteriaSrvc) Get(ctx context.Context, eventID string) (*CriterionSet, error) {
	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading criteria for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		return nil, newErrCriteriaNotFound()
	}
	return set, nil
}

// Save replaces the event's main criteria. Special-award criteria already
// in the stored set are preserved; they are owned by the awards service.
// The set is rejected unless the main weights sum to exactly 100.
func (s *CriteriaSrvc) Save(ctx context.Context, eventID string, eventTitle string, main []Criterion) (*CriterionSet, error) {
	seen := map[string]bool{}
	for _, c := range main {
		if c.IsSpecialAward || strings.HasPrefix(c.ID, SpecialCriterionPrefix) {
			return nil, newErrSpecialCriterionReadOnly()
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, newErrCriterionNameEmpty()
		}
		if c.PercentageWeight < 0 || c.PercentageWeight > 100 {
			return nil, newErrWeightOutOfRange(c.ID)
		}
		if seen[c.ID] {
			return nil, newErrDuplicateCriterionID(c.ID)
		}
		seen[c.ID] = true
	}

	if sum := MainWeightSum(main); sum != 100 {
		return nil, newErrWeightsDontSumTo100(sum)
	}

	now := time.Now()
	set := &CriterionSet{
		EventID:         eventID,
		EventTitle:      eventTitle,
		Criteria:        main,
		TotalPercentage: MainWeightSum(main),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	existing, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading criteria for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if existing != nil {
		set.CreatedAt = existing.CreatedAt
		set.Criteria = append(set.Criteria, existing.SpecialCriteria()...)
	}

	if err := s.repo.Save(ctx, set); err != nil {
		errMsg := fmt.Errorf("error saving criteria for event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return set, nil
}

// AppendSpecial adds an award-owned zero-weight criterion to the event's
// set. Called by the awards service when a "new"-type rule is created.
func (s *CriteriaSrvc) AppendSpecial(ctx context.Context, eventID string, c Criterion) error {
	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading criteria for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		set = &CriterionSet{EventID: eventID, CreatedAt: time.Now()}
	}

	c.IsSpecialAward = true
	c.PercentageWeight = 0

	// Replace on id collision so a re-created rule does not duplicate.
	kept := set.Criteria[:0]
	for _, existing := range set.Criteria {
		if existing.ID != c.ID {
			kept = append(kept, existing)
		}
	}
	set.Criteria = append(kept, c)
	set.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, set); err != nil {
		errMsg := fmt.Errorf("error saving criteria for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}

// RemoveSpecial deletes the criterion owned by the given award rule.
// Absence of the criteria document or the criterion is not an error.
func (s *CriteriaSrvc) RemoveSpecial(ctx context.Context, eventID string, awardID string) error {
	set, err := s.repo.Get(ctx, eventID)
	if err != nil {
		errMsg := fmt.Errorf("error reading criteria for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if set == nil {
		return nil
	}

	kept := set.Criteria[:0]
	for _, c := range set.Criteria {
		if c.SpecialAwardID != awardID {
			kept = append(kept, c)
		}
	}
	set.Criteria = kept
	set.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, set); err != nil {
		errMsg := fmt.Errorf("error saving criteria for event %s: %w", eventID, err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}

// DeleteForEvent removes the event's criteria document. Used by event
// deletion cleanup; absence is an expected outcome, not a fault.
func (s *CriteriaSrvc) DeleteForEvent(ctx context.Context, eventID string) error {
	return s.repo.Delete(ctx, eventID)
}

// SpecialCriterionPrefix prefixes criterion ids synthesized from
// "new"-type award rules.
const SpecialCriterionPrefix = "special_"

// SpecialCriterionID derives the criterion id owned by an award rule.
func SpecialCriterionID(awardID string) string {
	return SpecialCriterionPrefix + awardID
}
