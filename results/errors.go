package results

import (
	"net/http"

	"github.com/kultoura/backend/srvcerror"
)

const ErrCodeExportNotConfigured = "export_not_configured"

func newErrExportNotConfigured() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeExportNotConfigured,
		"result exports are not configured on this server",
	).SetHttpStatusCode(http.StatusNotImplemented)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
