package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

// apiResponse is the envelope every JSON endpoint replies with. Data is
// set on success; the code and message fields carry the service error
// otherwise.
type apiResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Data    any    `json:"data"`
	ErrCode string `json:"code,omitempty"`
	ErrMsg  string `json:"message,omitempty"`
}

func writeJson(w http.ResponseWriter, statusCode int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func writeJsonSuccessResponse(w http.ResponseWriter, data any) {
	writeJson(w, http.StatusOK, apiResponse{Status: "success", Data: data})
}

func writeJsonErrorResponse(w http.ResponseWriter, errMsg string, statusCode int, errCode string) {
	writeJson(w, statusCode, apiResponse{Status: "error", ErrCode: errCode, ErrMsg: errMsg})
}

func writeJsonInternalServerError(w http.ResponseWriter) {
	writeJsonErrorResponse(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		srvcerror.ErrCodeInternalServerError)
}

// handleJsonSrvcError maps a service error onto the envelope. Anything
// that is not a srvcerror.Error is hidden behind a generic 500.
func handleJsonSrvcError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if !errors.As(err, &srvcErr) {
		logger.Error("internal server error", "error", err)
		writeJsonInternalServerError(w)
		return
	}
	if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
		logger.Error("internal server error", "error", err)
	}
	writeJsonErrorResponse(w, srvcErr.Error(), srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
}
