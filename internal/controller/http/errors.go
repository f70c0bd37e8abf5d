package http

import (
	"net/http"

	"igclone/pkg/errs"
	"igclone/pkg/logger"

	"github.com/gin-gonic/gin"
)

var codeStatus = map[string]int{
	errs.EINVALID:      http.StatusBadRequest,
	errs.EUNAUTHORIZED: http.StatusUnauthorized,
	errs.EFORBIDDEN:    http.StatusForbidden,
	errs.ENOTFOUND:     http.StatusNotFound,
	errs.ECONFLICT:     http.StatusConflict,
	errs.EINTERNAL:     http.StatusInternalServerError,
}

// StatusFor maps an application error code to its HTTP status.
func StatusFor(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError responds with the status and message for err. Unclassified
// errors are logged and reported as a generic failure.
func writeError(c *gin.Context, log *logger.Logger, err error) {
	code := errs.ErrorCode(err)
	if code == errs.EINTERNAL {
		log.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(StatusFor(code), gin.H{"error": errs.ErrorMessage(err)})
}
