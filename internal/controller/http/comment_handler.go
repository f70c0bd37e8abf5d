package http

import (
	"net/http"

	"igclone/internal/usecase"
	"igclone/pkg/logger"
	"igclone/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, metrics *metrics.Metrics, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		metrics:        metrics,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	PostID  uint   `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Request.Context(), currentUserID(c), req.PostID, req.Content)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.CommentsCreated.Inc()
	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      Comments of a post
// @Description  Newest first
// @Tags         comments
// @Produce      json
// @Param        post_id path int true "Post ID"
// @Success      200  {array}   entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /comments/post/{post_id} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	comments, err := h.commentUseCase.ListComments(c.Request.Context(), postID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
