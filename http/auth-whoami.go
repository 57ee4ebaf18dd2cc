package http

import (
	"net/http"
)

func (httpserver *HttpServer) authWhoami(w http.ResponseWriter, r *http.Request) {
	claims := requireAuth(w, r)
	if claims == nil {
		return
	}

	type whoamiResponse struct {
		UUID     string   `json:"uuid"`
		Email    string   `json:"email"`
		FullName *string  `json:"full_name,omitempty"`
		Scopes   []string `json:"scopes"`
	}
	writeJsonSuccessResponse(w, whoamiResponse{
		UUID:     claims.UUID,
		Email:    claims.Email,
		FullName: claims.FullName,
		Scopes:   claims.Scopes,
	})
}
