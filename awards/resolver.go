package awards

import (
	"strings"

	"github.com/kultoura/backend/criteria"
)

// Resolve applies each award rule against the aggregated standings and
// picks one winner per award: the participant with the strictly highest
// average on the rule's target criterion. On a tie the participant that
// appears first in standings keeps the award; this is a known limitation,
// not a fairness guarantee. An award with no non-zero average on its
// target has a nil winner.
func Resolve(rules []Award, criterionSet []criteria.Criterion, standings []ParticipantStanding) []AwardResult {
	results := make([]AwardResult, 0, len(rules))
	for _, rule := range rules {
		targetID := rule.BasedOnCriterion
		criterionName := rule.CriterionName
		if rule.Type == TypeNew {
			targetID = criteria.SpecialCriterionID(rule.ID)
		} else {
			for _, c := range criterionSet {
				if c.ID == targetID {
					criterionName = c.Name
					break
				}
			}
			if criterionName == "" {
				criterionName = targetID
			}
		}

		results = append(results, AwardResult{
			AwardID:       rule.ID,
			AwardName:     rule.Name,
			Description:   rule.Description,
			Icon:          rule.Icon,
			CriterionID:   targetID,
			CriterionName: criterionName,
			Winner:        pickWinner(targetID, standings),
		})
	}
	return results
}

func pickWinner(criterionID string, standings []ParticipantStanding) *WinnerRef {
	var winner *WinnerRef
	highest := 0.0
	for _, st := range standings {
		score := st.CriterionAverages[criterionID]
		if score > highest {
			highest = score
			winner = &WinnerRef{
				ParticipantID:   st.ParticipantID,
				ParticipantName: st.ParticipantName,
				AverageScore:    score,
			}
		}
	}
	return winner
}

// DefaultAwards is a legacy compatibility shim for events that never
// defined explicit award rules: it synthesizes awards by fuzzy-matching
// criterion names. Matching by substring is fragile; explicit rules are
// always preferred.
func DefaultAwards(criterionSet []criteria.Criterion, standings []ParticipantStanding) []AwardResult {
	results := []AwardResult{}

	if c := findCriterionByName(criterionSet, "choreography"); c != nil {
		results = append(results, AwardResult{
			AwardName:     "Best in Choreography Award",
			Description:   "Exceptional originality, synchronization, and storytelling through movement",
			Icon:          "Star",
			CriterionID:   c.ID,
			CriterionName: c.Name,
			Winner:        pickWinner(c.ID, standings),
		})
	}

	if c := findCriterionByName(criterionSet, "costume", "props"); c != nil {
		results = append(results, AwardResult{
			AwardName:     "Best in Costume and Props Award",
			Description:   "Most authentic, well-designed, and culturally representative attire and props",
			Icon:          "Crown",
			CriterionID:   c.ID,
			CriterionName: c.Name,
			Winner:        pickWinner(c.ID, standings),
		})
	}

	return results
}

func findCriterionByName(criterionSet []criteria.Criterion, needles ...string) *criteria.Criterion {
	for i := range criterionSet {
		name := strings.ToLower(criterionSet[i].Name)
		id := strings.ToLower(criterionSet[i].ID)
		for _, needle := range needles {
			if strings.Contains(name, needle) || strings.Contains(id, needle) {
				return &criterionSet[i]
			}
		}
	}
	return nil
}
