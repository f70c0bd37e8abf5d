package http

import (
	"net/http"

	"igclone/internal/usecase"
	"igclone/pkg/logger"
	"igclone/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type GraphHandler struct {
	graphUseCase usecase.GraphUseCase
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewGraphHandler(graphUseCase usecase.GraphUseCase, metrics *metrics.Metrics, logger *logger.Logger) *GraphHandler {
	return &GraphHandler{
		graphUseCase: graphUseCase,
		metrics:      metrics,
		logger:       logger,
	}
}

// Follow godoc
// @Summary      Follow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID to follow"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *GraphHandler) Follow(c *gin.Context) {
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.graphUseCase.Follow(c.Request.Context(), currentUserID(c), targetID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Follows.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "You are now following this user"})
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID to unfollow"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/unfollow [delete]
func (h *GraphHandler) Unfollow(c *gin.Context) {
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.graphUseCase.Unfollow(c.Request.Context(), currentUserID(c), targetID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Unfollows.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "You have unfollowed this user"})
}

// ListFollowing godoc
// @Summary      Users followed by a user
// @Tags         follows
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {array}   entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/following [get]
func (h *GraphHandler) ListFollowing(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.graphUseCase.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListFollowers godoc
// @Summary      Followers of a user
// @Tags         follows
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {array}   entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/followers [get]
func (h *GraphHandler) ListFollowers(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	users, err := h.graphUseCase.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
