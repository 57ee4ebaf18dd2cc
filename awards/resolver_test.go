package awards_test

import (
	"testing"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCriteria = []criteria.Criterion{
	{ID: "choreography", Name: "Choreography", PercentageWeight: 60, MaxScore: 100},
	{ID: "costume", Name: "Costume and Props", PercentageWeight: 40, MaxScore: 100},
}

func standing(id, name string, averages map[string]float64) awards.ParticipantStanding {
	return awards.ParticipantStanding{
		ParticipantID:     id,
		ParticipantName:   name,
		CriterionAverages: averages,
	}
}

func TestResolveExistingCriterionAward(t *testing.T) {
	rules := []awards.Award{{
		ID:               "award-1",
		Name:             "Best in Choreography Award",
		Description:      "Highest choreography average",
		Type:             awards.TypeExisting,
		BasedOnCriterion: "choreography",
	}}
	standings := []awards.ParticipantStanding{
		standing("p1", "Alpha Troupe", map[string]float64{"choreography": 82}),
		standing("p2", "Beta Troupe", map[string]float64{"choreography": 91}),
	}

	results := awards.Resolve(rules, testCriteria, standings)
	require.Len(t, results, 1)

	assert.Equal(t, "choreography", results[0].CriterionID)
	assert.Equal(t, "Choreography", results[0].CriterionName)
	require.NotNil(t, results[0].Winner)
	assert.Equal(t, "p2", results[0].Winner.ParticipantID)
	assert.InDelta(t, 91.0, results[0].Winner.AverageScore, 1e-9)
}

func TestResolveNewTypeTargetsInjectedCriterion(t *testing.T) {
	rules := []awards.Award{{
		ID:            "award-2",
		Name:          "Crowd Favorite Award",
		Type:          awards.TypeNew,
		CriterionName: "Crowd Appeal",
	}}
	specialID := criteria.SpecialCriterionID("award-2")
	standings := []awards.ParticipantStanding{
		standing("p1", "Alpha Troupe", map[string]float64{specialID: 88}),
	}

	results := awards.Resolve(rules, testCriteria, standings)
	require.Len(t, results, 1)

	assert.Equal(t, specialID, results[0].CriterionID)
	assert.Equal(t, "Crowd Appeal", results[0].CriterionName)
	require.NotNil(t, results[0].Winner)
	assert.Equal(t, "p1", results[0].Winner.ParticipantID)
}

func TestResolveNoScoresMeansNoWinner(t *testing.T) {
	rules := []awards.Award{{
		ID:               "award-1",
		Name:             "Best in Choreography Award",
		Type:             awards.TypeExisting,
		BasedOnCriterion: "choreography",
	}}
	standings := []awards.ParticipantStanding{
		standing("p1", "Alpha Troupe", map[string]float64{"choreography": 0}),
	}

	results := awards.Resolve(rules, testCriteria, standings)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Winner)
}

func TestResolveTieKeepsFirstStanding(t *testing.T) {
	rules := []awards.Award{{
		ID:               "award-1",
		Name:             "Best in Choreography Award",
		Type:             awards.TypeExisting,
		BasedOnCriterion: "choreography",
	}}
	standings := []awards.ParticipantStanding{
		standing("p1", "Alpha Troupe", map[string]float64{"choreography": 85}),
		standing("p2", "Beta Troupe", map[string]float64{"choreography": 85}),
	}

	results := awards.Resolve(rules, testCriteria, standings)
	require.NotNil(t, results[0].Winner)
	assert.Equal(t, "p1", results[0].Winner.ParticipantID)
}

func TestDefaultAwardsFuzzyMatch(t *testing.T) {
	standings := []awards.ParticipantStanding{
		standing("p1", "Alpha Troupe", map[string]float64{"choreography": 80, "costume": 95}),
		standing("p2", "Beta Troupe", map[string]float64{"choreography": 90, "costume": 85}),
	}

	results := awards.DefaultAwards(testCriteria, standings)
	require.Len(t, results, 2)

	assert.Equal(t, "Best in Choreography Award", results[0].AwardName)
	require.NotNil(t, results[0].Winner)
	assert.Equal(t, "p2", results[0].Winner.ParticipantID)

	assert.Equal(t, "Best in Costume and Props Award", results[1].AwardName)
	require.NotNil(t, results[1].Winner)
	assert.Equal(t, "p1", results[1].Winner.ParticipantID)
}

func TestDefaultAwardsNoMatchingCriteria(t *testing.T) {
	plain := []criteria.Criterion{
		{ID: "technique", Name: "Technique", PercentageWeight: 100, MaxScore: 100},
	}
	results := awards.DefaultAwards(plain, nil)
	assert.Empty(t, results)
}
