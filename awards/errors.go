package awards

import (
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeAwardNotFound = "award_not_found"

func newErrAwardNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAwardNotFound,
		"special award not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAwardNameEmpty = "award_name_empty"

func newErrAwardNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAwardNameEmpty,
		"please fill in the award name and description",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAwardTypeInvalid = "award_type_invalid"

func newErrAwardTypeInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAwardTypeInvalid,
		"award type must be either \"existing\" or \"new\"",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeBasedOnCriterionMissing = "based_on_criterion_missing"

func newErrBasedOnCriterionMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBasedOnCriterionMissing,
		"please select a criterion for existing-based awards",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeCriterionDetailsMissing = "criterion_details_missing"

func newErrCriterionDetailsMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCriterionDetailsMissing,
		"please fill in criterion details for new awards",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
