package cleanup

import (
	"context"

	"github.com/muhammadheryan/ads-board/repository/image"
	"github.com/muhammadheryan/ads-board/thirdparty/rabbitmq"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"go.uber.org/zap"
)

// Cleaner removes image files whose owning rows are gone. With a publisher the work is
// handed to the worker, otherwise files are deleted inline.
type Cleaner struct {
	imageRepo image.ImageRepository
	publisher rabbitmq.ImagePublisher
}

func NewCleaner(imageRepo image.ImageRepository, publisher rabbitmq.ImagePublisher) *Cleaner {
	return &Cleaner{imageRepo: imageRepo, publisher: publisher}
}

// Cleanup never fails; it runs after the owning transaction committed.
func (c *Cleaner) Cleanup(ctx context.Context, directory, reason string, paths ...string) {
	if c == nil {
		return
	}
	refs := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			refs = append(refs, p)
		}
	}
	if len(refs) == 0 {
		return
	}

	msg := rabbitmq.ImageCleanupMessage{Directory: directory, Paths: refs, Reason: reason}
	if c.publisher != nil {
		err := c.publisher.PublishImageCleanup(msg)
		if err == nil {
			return
		}
		logger.Warn("[Cleanup] publish failed, deleting inline", zap.String("reason", reason), zap.String("error", err.Error()))
	}

	_ = c.Handle(context.WithoutCancel(ctx), msg)
}

// Handle deletes every path of msg; it is also the worker's consumer handler.
func (c *Cleaner) Handle(ctx context.Context, msg rabbitmq.ImageCleanupMessage) error {
	for _, p := range msg.Paths {
		c.imageRepo.Delete(ctx, p, msg.Directory)
	}
	return nil
}
