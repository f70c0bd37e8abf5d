package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"igclone/internal/entity"
	"igclone/internal/usecase"
	"igclone/pkg/logger"
	"igclone/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	feedUseCase usecase.FeedUseCase
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, feedUseCase usecase.FeedUseCase, metrics *metrics.Metrics, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		feedUseCase: feedUseCase,
		metrics:     metrics,
		logger:      logger,
	}
}

type LikesResponse struct {
	PostID     uint  `json:"post_id"`
	LikesCount int64 `json:"likes_count"`
}

// formImage opens the optional "image" file of a multipart form. The caller
// must call the returned close func.
func formImage(c *gin.Context) (*entity.ImageUpload, func(), error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*entity.ImageUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &entity.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}
	return upload, func() { file.Close() }, nil
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post with text content and an optional image (jpeg, png, gif or webp)
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content formData string true "Post content"
// @Param        image formData file false "Post image"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	image, closeImage, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer closeImage()

	post, err := h.postUseCase.CreatePost(c.Request.Context(), currentUserID(c), c.PostForm("content"), image)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.PostsCreated.Inc()
	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Visible to the owner and to the owner's followers
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.feedUseCase.GetPost(c.Request.Context(), currentUserID(c), postID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      Feed
// @Description  Posts of the users you follow, or of one user you may view, with like counts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        skip       query int    false "Offset" default(0)
// @Param        limit      query int    false "Page size (max 50)" default(10)
// @Param        user_id    query int    false "Only posts of this user"
// @Param        sort_by    query string false "Sort key" Enums(created_at, likes)
// @Param        sort_order query string false "Sort direction" Enums(asc, desc)
// @Success      200  {array}   entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", entity.DefaultFeedLimit)
	if !ok {
		return
	}

	query := entity.FeedQuery{
		ViewerID:  currentUserID(c),
		Skip:      skip,
		Limit:     limit,
		SortBy:    entity.SortField(c.Query("sort_by")),
		SortOrder: entity.SortOrder(c.Query("sort_order")),
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		id := uint(userID)
		query.UserID = &id
	}

	posts, err := h.feedUseCase.ListFeed(c.Request.Context(), query)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Replace content, and optionally replace or remove the image. Owner only.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path     int    true  "Post ID"
// @Param        content      formData string true  "Post content"
// @Param        image        formData file   false "New image"
// @Param        remove_image formData bool   false "Remove the current image"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	update := entity.PostUpdate{Content: c.PostForm("content")}
	if raw := c.PostForm("remove_image"); raw != "" {
		remove, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "remove_image must be a boolean"})
			return
		}
		update.RemoveImage = remove
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer closeImage()
	update.Image = image

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), currentUserID(c), postID, update)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Owner only. Comments and likes of the post are removed too.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), currentUserID(c), postID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// LikePost godoc
// @Summary      Like a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.postUseCase.LikePost(c.Request.Context(), currentUserID(c), postID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Likes.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Post liked"})
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/unlike [delete]
func (h *PostHandler) UnlikePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.postUseCase.UnlikePost(c.Request.Context(), currentUserID(c), postID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Unlikes.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Post unliked"})
}

// GetLikes godoc
// @Summary      Like count of a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  LikesResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/likes [get]
func (h *PostHandler) GetLikes(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	count, err := h.postUseCase.LikesCount(c.Request.Context(), postID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, LikesResponse{PostID: postID, LikesCount: count})
}
