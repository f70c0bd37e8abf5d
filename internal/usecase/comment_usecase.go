package usecase

import (
	"context"
	"strings"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/logger"
	"igclone/pkg/queue"
)

type CommentUseCase interface {
	AddComment(ctx context.Context, actorID, postID uint, content string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(ctx context.Context, actorID, postID uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrEmptyContent
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{PostID: postID, UserID: actorID, Content: content}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, uc.logger, queue.Event{
		Type:        queue.EventCommentCreated,
		ActorID:     actorID,
		RecipientID: post.UserID,
		PostID:      postID,
		CommentID:   comment.ID,
		Priority:    4,
		CreatedAt:   comment.CreatedAt,
	})
	return comment, nil
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPost(ctx, postID)
}
