package http

import (
	"net/http"
	"strconv"

	"igclone/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter, writing a 400 when it is malformed.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an optional integer query parameter, writing a 400 when it is malformed.
func queryInt(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return n, true
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}
