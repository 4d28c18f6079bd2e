package image

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
)

type local struct{}

// NewLocalRepository returns an ImageRepository backed by the local filesystem.
func NewLocalRepository() ImageRepository {
	return &local{}
}

func (l *local) Save(ctx context.Context, data []byte, originalName, directory, urlPrefix string) (string, error) {
	filename := generateFilename(originalName)

	if err := os.MkdirAll(directory, 0o755); err != nil {
		logger.Error("[ImageSave] err os.MkdirAll", zap.String("dir", directory), zap.String("error", err.Error()))
		metrics.Inc(metrics.ImageOperationsCounter, "save", "error")
		return "", errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to save image to %s", directory))
	}

	if err := os.WriteFile(filepath.Join(directory, filename), data, 0o644); err != nil {
		logger.Error("[ImageSave] err os.WriteFile", zap.String("dir", directory), zap.String("error", err.Error()))
		metrics.Inc(metrics.ImageOperationsCounter, "save", "error")
		return "", errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to save image to %s", directory))
	}

	metrics.Inc(metrics.ImageOperationsCounter, "save", "ok")
	return urlPrefix + filename, nil
}

func (l *local) Delete(ctx context.Context, imagePath, directory string) {
	if imagePath == "" {
		return
	}
	name := objectName(imagePath)
	if name == "" {
		return
	}

	err := os.Remove(filepath.Join(directory, name))
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("[ImageDelete] failed to delete image file", zap.String("path", imagePath), zap.String("error", err.Error()))
		metrics.Inc(metrics.ImageOperationsCounter, "delete", "error")
		return
	}
	metrics.Inc(metrics.ImageOperationsCounter, "delete", "ok")
}

func (l *local) Read(ctx context.Context, imagePath, directory string) ([]byte, error) {
	name := objectName(imagePath)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrStorageIO).WithMessage("failed to read image file: empty path")
	}

	data, err := os.ReadFile(filepath.Join(directory, name))
	if err != nil {
		logger.Error("[ImageRead] err os.ReadFile", zap.String("path", imagePath), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to read image file: %s", imagePath))
	}
	return data, nil
}
