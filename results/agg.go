package results

import (
	"sort"

	"github.com/kultoura/backend/scoring"
)

// Aggregate folds the submitted score records of an event into ranked
// participant results. The outcome depends only on the set of records,
// not their order:
//   - AverageScore is the mean of each judge's weighted total
//   - CriterionAverages average only non-zero values, so an unscored
//     special criterion does not drag the average down
//   - ranking sorts by AverageScore descending, ties broken by
//     participant id, and assigns Rank 1..n
//   - ParticipantName follows the most recently updated record, so a
//     rename mid-event shows the newest name
func Aggregate(records []scoring.ScoreRecord) []ParticipantResult {
	byParticipant := make(map[string][]scoring.ScoreRecord)
	for _, rec := range records {
		byParticipant[rec.ParticipantID] = append(byParticipant[rec.ParticipantID], rec)
	}

	results := make([]ParticipantResult, 0, len(byParticipant))
	for participantID, recs := range byParticipant {
		totalSum := 0.0
		criterionSums := make(map[string]float64)
		criterionCounts := make(map[string]int)
		judgeScores := make([]JudgeScore, 0, len(recs))

		for _, rec := range recs {
			totalSum += rec.TotalScore
			for id, v := range rec.Scores {
				if v > 0 {
					criterionSums[id] += v
					criterionCounts[id]++
				} else if _, seen := criterionSums[id]; !seen {
					criterionSums[id] = 0
				}
			}
			judgeScores = append(judgeScores, JudgeScore{
				JudgeID:    rec.JudgeID,
				JudgeEmail: rec.JudgeEmail,
				TotalScore: rec.TotalScore,
			})
		}

		criterionAverages := make(map[string]float64, len(criterionSums))
		for id, sum := range criterionSums {
			if count := criterionCounts[id]; count > 0 {
				criterionAverages[id] = sum / float64(count)
			} else {
				criterionAverages[id] = 0
			}
		}

		sort.Slice(judgeScores, func(i, j int) bool {
			if judgeScores[i].JudgeEmail != judgeScores[j].JudgeEmail {
				return judgeScores[i].JudgeEmail < judgeScores[j].JudgeEmail
			}
			return judgeScores[i].JudgeID < judgeScores[j].JudgeID
		})

		latest := recs[0]
		for _, rec := range recs[1:] {
			if rec.UpdatedAt.After(latest.UpdatedAt) ||
				(rec.UpdatedAt.Equal(latest.UpdatedAt) && rec.JudgeID < latest.JudgeID) {
				latest = rec
			}
		}

		results = append(results, ParticipantResult{
			ParticipantID:     participantID,
			ParticipantName:   latest.ParticipantName,
			AverageScore:      totalSum / float64(len(recs)),
			JudgeCount:        len(recs),
			CriterionAverages: criterionAverages,
			JudgeScores:       judgeScores,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].AverageScore != results[j].AverageScore {
			return results[i].AverageScore > results[j].AverageScore
		}
		return results[i].ParticipantID < results[j].ParticipantID
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
