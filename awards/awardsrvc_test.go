package awards_test

import (
	"context"
	"testing"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAwardSrvc(t *testing.T) (*awards.AwardSrvc, *criteria.CriteriaSrvc) {
	t.Helper()
	criteriaSrvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())
	awardSrvc := awards.NewAwardSrvc(awards.NewInMemAwardRepo(), criteriaSrvc)

	_, err := criteriaSrvc.Save(context.Background(), "event-1", "Test Event", []criteria.Criterion{
		{ID: "choreography", Name: "Choreography", PercentageWeight: 100, MaxScore: 100},
	})
	require.NoError(t, err)
	return awardSrvc, criteriaSrvc
}

func TestAddNewTypeAwardInjectsCriterion(t *testing.T) {
	awardSrvc, criteriaSrvc := setupAwardSrvc(t)
	ctx := context.Background()

	added, err := awardSrvc.Add(ctx, "event-1", awards.Award{
		Name:                 "Crowd Favorite Award",
		Description:          "Audience resonance",
		Type:                 awards.TypeNew,
		CriterionName:        "Crowd Appeal",
		CriterionDescription: "How strongly the performance resonated",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.Equal(t, 100, added.MaxScore)

	set, err := criteriaSrvc.Get(ctx, "event-1")
	require.NoError(t, err)

	special := set.SpecialCriteria()
	require.Len(t, special, 1)
	assert.Equal(t, criteria.SpecialCriterionID(added.ID), special[0].ID)
	assert.Equal(t, "Crowd Appeal", special[0].Name)
	assert.Equal(t, 0, special[0].PercentageWeight)
	assert.Equal(t, added.ID, special[0].SpecialAwardID)

	// Main weights still sum to 100 with the zero-weight addition.
	assert.Equal(t, 100, criteria.MainWeightSum(set.Criteria))
}

func TestRemoveNewTypeAwardRemovesCriterion(t *testing.T) {
	awardSrvc, criteriaSrvc := setupAwardSrvc(t)
	ctx := context.Background()

	added, err := awardSrvc.Add(ctx, "event-1", awards.Award{
		Name:                 "Crowd Favorite Award",
		Description:          "Audience resonance",
		Type:                 awards.TypeNew,
		CriterionName:        "Crowd Appeal",
		CriterionDescription: "How strongly the performance resonated",
	})
	require.NoError(t, err)

	require.NoError(t, awardSrvc.Remove(ctx, "event-1", added.ID))

	set, err := criteriaSrvc.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Empty(t, set.SpecialCriteria())

	rules, err := awardSrvc.List(ctx, "event-1")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestRemoveFirstOfTwoAwardsRemovesItsCriterion(t *testing.T) {
	awardSrvc, criteriaSrvc := setupAwardSrvc(t)
	ctx := context.Background()

	first, err := awardSrvc.Add(ctx, "event-1", awards.Award{
		Name:                 "Crowd Favorite Award",
		Description:          "Audience resonance",
		Type:                 awards.TypeNew,
		CriterionName:        "Crowd Appeal",
		CriterionDescription: "How strongly the performance resonated",
	})
	require.NoError(t, err)
	second, err := awardSrvc.Add(ctx, "event-1", awards.Award{
		Name:             "Best in Choreography Award",
		Description:      "Highest choreography average",
		Type:             awards.TypeExisting,
		BasedOnCriterion: "choreography",
	})
	require.NoError(t, err)

	require.NoError(t, awardSrvc.Remove(ctx, "event-1", first.ID))

	set, err := criteriaSrvc.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Empty(t, set.SpecialCriteria())

	rules, err := awardSrvc.List(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, second.ID, rules[0].ID)
}

func TestAddExistingTypeRequiresCriterion(t *testing.T) {
	awardSrvc, _ := setupAwardSrvc(t)
	ctx := context.Background()

	_, err := awardSrvc.Add(ctx, "event-1", awards.Award{
		Name:        "Best in Choreography Award",
		Description: "Highest choreography average",
		Type:        awards.TypeExisting,
	})
	require.Error(t, err)
}

func TestRemoveMissingAward(t *testing.T) {
	awardSrvc, _ := setupAwardSrvc(t)
	err := awardSrvc.Remove(context.Background(), "event-1", "no-such-award")
	require.Error(t, err)
}
