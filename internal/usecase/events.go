package usecase

import (
	"context"
	"io"

	"igclone/pkg/logger"
	"igclone/pkg/queue"
)

// EventPublisher is implemented by *queue.Client.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event queue.Event) error
}

// ImageStore is implemented by *s3.Client.
type ImageStore interface {
	UploadFile(key string, body io.ReadSeeker, contentType string) (string, error)
	DeleteFile(key string) error
	KeyFromURL(url string) (string, bool)
}

// publish sends event when a publisher is configured. Failures are logged
// and never fail the caller's write.
func publish(ctx context.Context, publisher EventPublisher, log *logger.Logger, event queue.Event) {
	if publisher == nil || event.ActorID == event.RecipientID {
		return
	}
	if err := publisher.PublishEvent(ctx, event); err != nil {
		log.Warn("Failed to publish %s event: %v", event.Type, err)
	}
}

// deleteImage removes the object behind url, logging failures.
func deleteImage(images ImageStore, log *logger.Logger, url *string) {
	if images == nil || url == nil {
		return
	}
	key, ok := images.KeyFromURL(*url)
	if !ok {
		log.Warn("Image %s is not in the configured bucket, skipping delete", *url)
		return
	}
	if err := images.DeleteFile(key); err != nil {
		log.Warn("Failed to delete image %s: %v", key, err)
	}
}
