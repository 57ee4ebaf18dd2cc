package user

import (
	"fmt"
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeEmailExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailExists,
		"a user with this email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"the email address is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("the password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeRoleInvalid = "role_invalid"

func newErrRoleInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRoleInvalid,
		"the role must be either admin or judge",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailOrPasswordIncorrect = "email_or_password_incorrect"

func newErrEmailOrPasswordIncorrect() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailOrPasswordIncorrect,
		"email or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
