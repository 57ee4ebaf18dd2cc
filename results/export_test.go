package results_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSVWithAwards(t *testing.T) {
	res := &results.EventResults{
		EventID:    "event-1",
		EventTitle: "Festival",
		Results: []results.ParticipantResult{
			{
				ParticipantID: "p2", ParticipantName: "Beta Troupe",
				AverageScore: 85, JudgeCount: 2, Rank: 1,
				JudgeScores: []results.JudgeScore{
					{JudgeEmail: "j1@example.com", TotalScore: 90},
					{JudgeEmail: "j2@example.com", TotalScore: 80},
				},
			},
			{
				ParticipantID: "p1", ParticipantName: "Alpha Troupe",
				AverageScore: 70, JudgeCount: 2, Rank: 2,
				JudgeScores: []results.JudgeScore{
					{JudgeEmail: "j1@example.com", TotalScore: 70},
					{JudgeEmail: "j2@example.com", TotalScore: 70},
				},
			},
		},
		Awards: []awards.AwardResult{
			{
				AwardName: "Best in Choreography Award",
				Winner:    &awards.WinnerRef{ParticipantID: "p2", ParticipantName: "Beta Troupe", AverageScore: 91},
			},
			{
				AwardName: "Crowd Favorite Award",
				Winner:    nil,
			},
		},
	}

	raw, err := results.BuildCSV(res)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Rank", "Participant", "Average Score", "Judge Count", "Individual Scores", "Special Awards"}, rows[0])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Beta Troupe", rows[1][1])
	assert.Equal(t, "85.00", rows[1][2])
	assert.Equal(t, "2", rows[1][3])
	assert.Equal(t, "j1@example.com: 90.00; j2@example.com: 80.00", rows[1][4])
	assert.Equal(t, "Best in Choreography Award", rows[1][5])

	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Alpha Troupe", rows[2][1])
	assert.Empty(t, rows[2][5])
}

func TestBuildCSVWithoutAwardsOmitsColumn(t *testing.T) {
	res := &results.EventResults{
		Results: []results.ParticipantResult{
			{ParticipantID: "p1", ParticipantName: "Alpha Troupe", AverageScore: 70, JudgeCount: 1, Rank: 1},
		},
	}

	raw, err := results.BuildCSV(res)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rank", "Participant", "Average Score", "Judge Count", "Individual Scores"}, rows[0])
	assert.Len(t, rows[1], 5)
}
