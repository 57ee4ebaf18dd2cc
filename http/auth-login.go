package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received login request", "email", req.Email)

	loggedIn, token, err := httpserver.userSrvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	type loginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
	writeJsonSuccessResponse(w, loginResponse{
		Token: token,
		User:  mapUserResponse(loggedIn),
	})
}
