package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

// listUsers returns every registered account for the admin dashboard.
func (httpserver *HttpServer) listUsers(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	users, err := httpserver.userSrvc.ListUsers(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = mapUserResponse(&users[i])
	}
	writeJsonSuccessResponse(w, resp)
}

func (httpserver *HttpServer) getUser(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if claims := requireAdmin(w, r); claims == nil {
		return
	}

	u, err := httpserver.userSrvc.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	writeJsonSuccessResponse(w, mapUserResponse(u))
}
