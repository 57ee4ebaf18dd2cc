package results_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/kultoura/backend/results"
	"github.com/kultoura/backend/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(judgeID, participantID, participantName string, total float64, scores map[string]float64) scoring.ScoreRecord {
	return scoring.ScoreRecord{
		ID:              judgeID + "_" + participantID,
		EventID:         "event-1",
		JudgeID:         judgeID,
		JudgeEmail:      judgeID + "@example.com",
		ParticipantID:   participantID,
		ParticipantName: participantName,
		Scores:          scores,
		TotalScore:      total,
	}
}

func TestAggregateAveragesAndRanks(t *testing.T) {
	records := []scoring.ScoreRecord{
		record("j1", "p1", "Alpha Troupe", 70, map[string]float64{"c1": 70}),
		record("j2", "p1", "Alpha Troupe", 70, map[string]float64{"c1": 70}),
		record("j1", "p2", "Beta Troupe", 90, map[string]float64{"c1": 90}),
		record("j2", "p2", "Beta Troupe", 80, map[string]float64{"c1": 80}),
	}

	ranked := results.Aggregate(records)
	require.Len(t, ranked, 2)

	assert.Equal(t, "p2", ranked[0].ParticipantID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.InDelta(t, 85.0, ranked[0].AverageScore, 1e-9)
	assert.Equal(t, 2, ranked[0].JudgeCount)

	assert.Equal(t, "p1", ranked[1].ParticipantID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.InDelta(t, 70.0, ranked[1].AverageScore, 1e-9)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	records := []scoring.ScoreRecord{
		record("j1", "p1", "Alpha Troupe", 70, map[string]float64{"c1": 70}),
		record("j2", "p1", "Alpha Troupe", 75, map[string]float64{"c1": 75}),
		record("j1", "p2", "Beta Troupe", 90, map[string]float64{"c1": 90}),
		record("j2", "p2", "Beta Troupe", 80, map[string]float64{"c1": 80}),
		record("j3", "p3", "Gamma Troupe", 60, map[string]float64{"c1": 60}),
	}

	expected := results.Aggregate(records)
	for i := 0; i < 10; i++ {
		shuffled := append([]scoring.ScoreRecord(nil), records...)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, expected, results.Aggregate(shuffled))
	}
}

func TestAggregateTieBreaksByParticipantID(t *testing.T) {
	records := []scoring.ScoreRecord{
		record("j1", "p2", "Beta Troupe", 80, map[string]float64{"c1": 80}),
		record("j1", "p1", "Alpha Troupe", 80, map[string]float64{"c1": 80}),
	}

	ranked := results.Aggregate(records)
	require.Len(t, ranked, 2)
	assert.Equal(t, "p1", ranked[0].ParticipantID)
	assert.Equal(t, "p2", ranked[1].ParticipantID)
}

func TestParticipantNameFollowsNewestRecord(t *testing.T) {
	// The participant was renamed between the two judges' submissions;
	// the newer record's name wins regardless of input order.
	older := record("j1", "p1", "Alpha Troupe", 70, map[string]float64{"c1": 70})
	older.UpdatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	newer := record("j2", "p1", "Alpha Troupe (Senior)", 80, map[string]float64{"c1": 80})
	newer.UpdatedAt = time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	for _, records := range [][]scoring.ScoreRecord{
		{older, newer},
		{newer, older},
	} {
		ranked := results.Aggregate(records)
		require.Len(t, ranked, 1)
		assert.Equal(t, "Alpha Troupe (Senior)", ranked[0].ParticipantName)
	}
}

func TestCriterionAveragesExcludeZeros(t *testing.T) {
	// Two judges scored the main criterion; only one gave the special
	// criterion a value. The special average must not be dragged down by
	// the judge that skipped it.
	records := []scoring.ScoreRecord{
		record("j1", "p1", "Alpha Troupe", 80, map[string]float64{"c1": 80, "special_a": 90}),
		record("j2", "p1", "Alpha Troupe", 70, map[string]float64{"c1": 70, "special_a": 0}),
	}

	ranked := results.Aggregate(records)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 75.0, ranked[0].CriterionAverages["c1"], 1e-9)
	assert.InDelta(t, 90.0, ranked[0].CriterionAverages["special_a"], 1e-9)
}

func TestCriterionNobodyScoredAveragesToZero(t *testing.T) {
	records := []scoring.ScoreRecord{
		record("j1", "p1", "Alpha Troupe", 80, map[string]float64{"c1": 80, "special_a": 0}),
	}

	ranked := results.Aggregate(records)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.0, ranked[0].CriterionAverages["special_a"], 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	ranked := results.Aggregate(nil)
	assert.Empty(t, ranked)
}
