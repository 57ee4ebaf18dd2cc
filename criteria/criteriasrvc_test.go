package criteria_test

import (
	"context"
	"testing"

	"github.com/kultoura/backend/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRejectsWeightsNotSummingTo100(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())

	_, err := srvc.Save(context.Background(), "event-1", "Test Event", []criteria.Criterion{
		{ID: "a", Name: "A", PercentageWeight: 50, MaxScore: 100},
		{ID: "b", Name: "B", PercentageWeight: 40, MaxScore: 100},
	})
	require.Error(t, err)
}

func TestSaveRejectsDuplicateIDs(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())

	_, err := srvc.Save(context.Background(), "event-1", "Test Event", []criteria.Criterion{
		{ID: "a", Name: "A", PercentageWeight: 50, MaxScore: 100},
		{ID: "a", Name: "A again", PercentageWeight: 50, MaxScore: 100},
	})
	require.Error(t, err)
}

func TestSavePreservesSpecialCriteria(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())
	ctx := context.Background()

	_, err := srvc.Save(ctx, "event-1", "Test Event", []criteria.Criterion{
		{ID: "a", Name: "A", PercentageWeight: 100, MaxScore: 100},
	})
	require.NoError(t, err)

	require.NoError(t, srvc.AppendSpecial(ctx, "event-1", criteria.Criterion{
		ID:             criteria.SpecialCriterionID("award-1"),
		Name:           "Crowd Appeal",
		SpecialAwardID: "award-1",
	}))

	// Replacing the main criteria keeps the award-owned one.
	set, err := srvc.Save(ctx, "event-1", "Test Event", []criteria.Criterion{
		{ID: "b", Name: "B", PercentageWeight: 60, MaxScore: 100},
		{ID: "c", Name: "C", PercentageWeight: 40, MaxScore: 100},
	})
	require.NoError(t, err)

	require.Len(t, set.SpecialCriteria(), 1)
	assert.Equal(t, "award-1", set.SpecialCriteria()[0].SpecialAwardID)
	assert.Len(t, set.MainCriteria(), 2)
}

func TestSaveRejectsSpecialPrefixInMainCriteria(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())

	_, err := srvc.Save(context.Background(), "event-1", "Test Event", []criteria.Criterion{
		{ID: "special_award-1", Name: "Sneaky", PercentageWeight: 100, MaxScore: 100},
	})
	require.Error(t, err)
}

func TestAppendSpecialReplacesOnCollision(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())
	ctx := context.Background()

	id := criteria.SpecialCriterionID("award-1")
	require.NoError(t, srvc.AppendSpecial(ctx, "event-1", criteria.Criterion{
		ID: id, Name: "Crowd Appeal", SpecialAwardID: "award-1",
	}))
	require.NoError(t, srvc.AppendSpecial(ctx, "event-1", criteria.Criterion{
		ID: id, Name: "Crowd Appeal v2", SpecialAwardID: "award-1",
	}))

	set, err := srvc.Get(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, set.Criteria, 1)
	assert.Equal(t, "Crowd Appeal v2", set.Criteria[0].Name)
}

func TestRemoveSpecialIsIdempotent(t *testing.T) {
	srvc := criteria.NewCriteriaSrvc(criteria.NewInMemCriteriaRepo())
	ctx := context.Background()

	// No document at all.
	require.NoError(t, srvc.RemoveSpecial(ctx, "event-1", "award-1"))

	require.NoError(t, srvc.AppendSpecial(ctx, "event-1", criteria.Criterion{
		ID: criteria.SpecialCriterionID("award-1"), Name: "Crowd Appeal", SpecialAwardID: "award-1",
	}))
	require.NoError(t, srvc.RemoveSpecial(ctx, "event-1", "award-1"))
	require.NoError(t, srvc.RemoveSpecial(ctx, "event-1", "award-1"))

	set, err := srvc.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Empty(t, set.SpecialCriteria())
}
