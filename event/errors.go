package event

import (
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeEventNotFound = "event_not_found"

func newErrEventNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEventNotFound,
		"event not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeEventTitleEmpty = "event_title_empty"

func newErrEventTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEventTitleEmpty,
		"event title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeJudgingModeInvalid = "judging_mode_invalid"

func newErrJudgingModeInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgingModeInvalid,
		"judging mode must be either \"sequential\" or \"free-roam\"",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeParticipantNotFound = "participant_not_found"

func newErrParticipantNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeParticipantNotFound,
		"participant not found in this event",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeParticipantNameEmpty = "participant_name_empty"

func newErrParticipantNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeParticipantNameEmpty,
		"participant name must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEventFull = "event_full"

func newErrEventFull() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEventFull,
		"this event has reached its maximum number of participants",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodePosterInvalid = "poster_invalid"

func newErrPosterInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePosterInvalid,
		"poster must be a JPEG or PNG image",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
