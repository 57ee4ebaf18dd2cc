package criteria

import "time"

// Criterion is one scoring dimension of an event. Main criteria carry a
// percentage weight; special-award criteria always carry weight 0 and
// reference the award rule that created them.
type Criterion struct {
	ID               string
	Name             string
	Description      string
	PercentageWeight int
	MaxScore         int
	IsSpecialAward   bool
	SpecialAwardID   string
	AwardName        string
}

// CriterionSet is the criteria document of a single event.
type CriterionSet struct {
	EventID         string
	EventTitle      string
	Criteria        []Criterion
	TotalPercentage int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MainCriteria returns the weight-bearing criteria of the set.
func (s *CriterionSet) MainCriteria() []Criterion {
	main := make([]Criterion, 0, len(s.Criteria))
	for _, c := range s.Criteria {
		if !c.IsSpecialAward {
			main = append(main, c)
		}
	}
	return main
}

// SpecialCriteria returns the zero-weight criteria injected by award rules.
func (s *CriterionSet) SpecialCriteria() []Criterion {
	special := make([]Criterion, 0)
	for _, c := range s.Criteria {
		if c.IsSpecialAward {
			special = append(special, c)
		}
	}
	return special
}

// MainWeightSum sums the percentage weights of the main criteria.
func MainWeightSum(criteria []Criterion) int {
	sum := 0
	for _, c := range criteria {
		if !c.IsSpecialAward {
			sum += c.PercentageWeight
		}
	}
	return sum
}
