package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/errs"
	"igclone/pkg/logger"
	"igclone/pkg/queue"

	"github.com/google/uuid"
)

// imageTypes maps accepted sniffed content types to object key extensions.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type PostUseCase interface {
	CreatePost(ctx context.Context, ownerID uint, content string, image *entity.ImageUpload) (*entity.Post, error)
	UpdatePost(ctx context.Context, actorID, postID uint, update entity.PostUpdate) (*entity.Post, error)
	DeletePost(ctx context.Context, actorID, postID uint) error
	LikePost(ctx context.Context, actorID, postID uint) (*entity.Like, error)
	UnlikePost(ctx context.Context, actorID, postID uint) error
	LikesCount(ctx context.Context, postID uint) (int64, error)
}

type postUseCase struct {
	postRepo      persistent.PostRepository
	likeRepo      persistent.LikeRepository
	images        ImageStore
	publisher     EventPublisher
	maxImageBytes int64
	logger        *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	images ImageStore,
	publisher EventPublisher,
	maxImageBytes int64,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:      postRepo,
		likeRepo:      likeRepo,
		images:        images,
		publisher:     publisher,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, ownerID uint, content string, image *entity.ImageUpload) (*entity.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrEmptyContent
	}

	post := &entity.Post{UserID: ownerID, Content: content}
	if image != nil {
		url, err := uc.storeImage(ownerID, image)
		if err != nil {
			return nil, err
		}
		post.ImageURL = &url
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		deleteImage(uc.images, uc.logger, post.ImageURL)
		return nil, err
	}

	uc.logger.Info("User %d created post %d", ownerID, post.ID)
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, actorID, postID uint, update entity.PostUpdate) (*entity.Post, error) {
	post, err := uc.ownedPost(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(update.Content)
	if content == "" {
		return nil, entity.ErrEmptyContent
	}

	oldImage := post.ImageURL
	var newImage *string
	switch {
	case update.Image != nil:
		url, err := uc.storeImage(actorID, update.Image)
		if err != nil {
			return nil, err
		}
		newImage = &url
		post.ImageURL = newImage
	case update.RemoveImage:
		post.ImageURL = nil
	}
	post.Content = content

	if err := uc.postRepo.Update(ctx, post); err != nil {
		deleteImage(uc.images, uc.logger, newImage)
		return nil, err
	}
	if oldImage != nil && (post.ImageURL == nil || *post.ImageURL != *oldImage) {
		deleteImage(uc.images, uc.logger, oldImage)
	}

	likes, err := uc.likeRepo.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.LikesCount = likes
	return post, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, actorID, postID uint) error {
	post, err := uc.ownedPost(ctx, actorID, postID)
	if err != nil {
		return err
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	deleteImage(uc.images, uc.logger, post.ImageURL)

	uc.logger.Info("User %d deleted post %d", actorID, postID)
	return nil
}

func (uc *postUseCase) LikePost(ctx context.Context, actorID, postID uint) (*entity.Like, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	like, err := uc.likeRepo.Create(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, uc.logger, queue.Event{
		Type:        queue.EventPostLiked,
		ActorID:     actorID,
		RecipientID: post.UserID,
		PostID:      postID,
		Priority:    3,
		CreatedAt:   like.CreatedAt,
	})
	return like, nil
}

func (uc *postUseCase) UnlikePost(ctx context.Context, actorID, postID uint) error {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return uc.likeRepo.Delete(ctx, actorID, postID)
}

func (uc *postUseCase) LikesCount(ctx context.Context, postID uint) (int64, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return uc.likeRepo.CountByPost(ctx, postID)
}

// ownedPost loads the post and checks ownership. A missing post is reported
// before a foreign one.
func (uc *postUseCase) ownedPost(ctx context.Context, actorID, postID uint) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, entity.ErrNotPostOwner
	}
	return post, nil
}

// storeImage validates the upload by size and sniffed type and stores it under
// posts/<owner>/<uuid><ext>.
func (uc *postUseCase) storeImage(ownerID uint, image *entity.ImageUpload) (string, error) {
	if uc.images == nil {
		return "", entity.ErrImagesUnavailable
	}
	if uc.maxImageBytes > 0 && image.Size > uc.maxImageBytes {
		return "", errs.Errorf(errs.EINVALID, "image must be at most %d bytes", uc.maxImageBytes)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(image.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read image: %w", err)
	}
	if _, err := image.Body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	ext, ok := imageTypes[contentType]
	if !ok {
		return "", entity.ErrImageType
	}

	key := fmt.Sprintf("posts/%d/%s%s", ownerID, uuid.New().String(), ext)
	url, err := uc.images.UploadFile(key, image.Body, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image %s: %v", key, err)
		return "", err
	}
	return url, nil
}
