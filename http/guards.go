package http

import (
	"net/http"

	"github.com/kultoura/backend/auth"
	"github.com/kultoura/backend/scoring"
)

// requireAuth returns the request's JWT claims or writes a 401. Handlers
// call it first and bail out on nil.
func requireAuth(w http.ResponseWriter, r *http.Request) *auth.JwtClaims {
	claims := auth.GetClaims(r.Context())
	if claims == nil {
		writeJsonErrorResponse(w,
			"authentication required",
			http.StatusUnauthorized,
			"unauthorized")
		return nil
	}
	return claims
}

// requireAdmin returns the claims only when the token carries the admin
// scope, writing a 401 or 403 otherwise.
func requireAdmin(w http.ResponseWriter, r *http.Request) *auth.JwtClaims {
	claims := requireAuth(w, r)
	if claims == nil {
		return nil
	}
	if !claims.HasScope("admin") {
		writeJsonErrorResponse(w,
			"administrator access required",
			http.StatusForbidden,
			"forbidden")
		return nil
	}
	return claims
}

func judgeFromClaims(claims *auth.JwtClaims) scoring.Judge {
	return scoring.Judge{
		ID:    claims.UUID,
		Email: claims.Email,
	}
}
