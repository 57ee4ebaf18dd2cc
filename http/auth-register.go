package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/user"
)

func (httpserver *HttpServer) authRegister(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type registerRequest struct {
		Email    string  `json:"email"`
		FullName *string `json:"full_name"`
		Password string  `json:"password"`
		Role     string  `json:"role"`
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// Only admins may create other admins. An unauthenticated register
	// always yields a judge account.
	role := user.RoleJudge
	if req.Role == string(user.RoleAdmin) {
		claims := requireAdmin(w, r)
		if claims == nil {
			return
		}
		role = user.RoleAdmin
	}

	registered, err := httpserver.userSrvc.Register(r.Context(), user.RegisterParams{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	logger.Info("registered user", "email", registered.Email, "role", registered.Role)
	writeJsonSuccessResponse(w, mapUserResponse(registered))
}
