package http

import (
	"net/http"

	"igclone/internal/entity"
	"igclone/internal/usecase"
	"igclone/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

type NotificationsResponse struct {
	Notifications []*entity.Notification `json:"notifications"`
	Count         int                    `json:"count"`
	Total         int64                  `json:"total"`
}

// GetNotifications godoc
// @Summary      Get notifications
// @Description  Follows, likes and comments addressed to the current user, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Number of notifications" default(20)
// @Param        offset query int false "Offset" default(0)
// @Success      200  {object}  NotificationsResponse
// @Failure      400  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 20)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	notifications, total, err := h.notificationUseCase.GetNotifications(c.Request.Context(), currentUserID(c), offset, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NotificationsResponse{
		Notifications: notifications,
		Count:         len(notifications),
		Total:         total,
	})
}
