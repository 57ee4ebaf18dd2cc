package scoring

import (
	"fmt"
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeEventNotActive = "event_not_active"

func newErrEventNotActive() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEventNotActive,
		"this event is not currently active for judging",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeNotCurrentPerformer = "not_current_performer"

func newErrNotCurrentPerformer() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotCurrentPerformer,
		"you can only score the currently performing participant",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeCriteriaNotUsable = "criteria_not_usable"

func newErrCriteriaNotUsable(totalWeight int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCriteriaNotUsable,
		fmt.Sprintf("event criteria weights sum to %d%%, not 100%%; scoring is disabled until an admin fixes them", totalWeight),
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeParticipantNotFound = "participant_not_found"

func newErrParticipantNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeParticipantNotFound,
		"participant not found in this event",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoActiveSession = "no_active_session"

func newErrNoActiveSession() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoActiveSession,
		"no scoring session is open for this participant",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeScoreOutOfRange = "score_out_of_range"

func newErrScoreOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeScoreOutOfRange,
		"scores must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnknownCriterion = "unknown_criterion"

func newErrUnknownCriterion(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownCriterion,
		fmt.Sprintf("criterion %q is not part of this event", id),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSessionLocked = "session_locked"

func newErrSessionLocked() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSessionLocked,
		"this score has been submitted; unlock it to make changes",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeSessionNotSubmitted = "session_not_submitted"

func newErrSessionNotSubmitted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSessionNotSubmitted,
		"only a submitted score can be unlocked",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeNotAllCriteriaScored = "not_all_criteria_scored"

func newErrNotAllCriteriaScored() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAllCriteriaScored,
		"please score all criteria before submitting",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmitInProgress = "submit_in_progress"

func newErrSubmitInProgress() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmitInProgress,
		"a submission is already in progress for this participant",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeSubmitFailed = "score_submit_failed"

func newErrSubmitFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmitFailed,
		"failed to submit score, please try again",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
