package criteria

import (
	"fmt"
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeCriteriaNotFound = "criteria_not_found"

func newErrCriteriaNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCriteriaNotFound,
		"this event does not have judging criteria set up",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeWeightsDontSumTo100 = "weights_dont_sum_to_100"

func newErrWeightsDontSumTo100(got int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeWeightsDontSumTo100,
		fmt.Sprintf("main criteria weights must sum to exactly 100%%, got %d%%", got),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeDuplicateCriterionID = "duplicate_criterion_id"

func newErrDuplicateCriterionID(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateCriterionID,
		fmt.Sprintf("criterion id %q appears more than once", id),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeWeightOutOfRange = "weight_out_of_range"

func newErrWeightOutOfRange(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeWeightOutOfRange,
		fmt.Sprintf("criterion %q weight must be between 0 and 100", id),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeCriterionNameEmpty = "criterion_name_empty"

func newErrCriterionNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCriterionNameEmpty,
		"every criterion needs a name",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSpecialCriterionReadOnly = "special_criterion_read_only"

func newErrSpecialCriterionReadOnly() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSpecialCriterionReadOnly,
		"special award criteria are managed through the special awards screen",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
