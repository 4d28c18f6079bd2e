package image

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/muhammadheryan/ads-board/cmd/config"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/muhammadheryan/ads-board/utils/metrics"
	"go.uber.org/zap"
)

// minioStore keeps images as objects; the directory becomes the object key prefix.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIORepository connects to MinIO (or any S3 compatible endpoint) and makes sure the bucket exists.
func NewMinIORepository(ctx context.Context, cfg config.StorageConfig) (ImageRepository, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client for %s: %w", cfg.MinIOEndpoint, err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %s: %w", cfg.MinIOBucket, err)
		}
		logger.Info("minio bucket created", zap.String("bucket", cfg.MinIOBucket))
	}

	return &minioStore{client: client, bucket: cfg.MinIOBucket}, nil
}

func objectKey(directory, name string) string {
	return path.Join(path.Clean("/" + directory)[1:], name)
}

func (m *minioStore) Save(ctx context.Context, data []byte, originalName, directory, urlPrefix string) (string, error) {
	filename := generateFilename(originalName)
	key := objectKey(directory, filename)

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		logger.Error("[ImageSave] err minio.PutObject", zap.String("key", key), zap.String("error", err.Error()))
		metrics.Inc(metrics.ImageOperationsCounter, "save", "error")
		return "", errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to save image to %s", directory))
	}

	metrics.Inc(metrics.ImageOperationsCounter, "save", "ok")
	return urlPrefix + filename, nil
}

func (m *minioStore) Delete(ctx context.Context, imagePath, directory string) {
	name := objectName(imagePath)
	if imagePath == "" || name == "" {
		return
	}

	key := objectKey(directory, name)
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.Warn("[ImageDelete] failed to delete image object", zap.String("key", key), zap.String("error", err.Error()))
		metrics.Inc(metrics.ImageOperationsCounter, "delete", "error")
		return
	}
	metrics.Inc(metrics.ImageOperationsCounter, "delete", "ok")
}

func (m *minioStore) Read(ctx context.Context, imagePath, directory string) ([]byte, error) {
	name := objectName(imagePath)
	if name == "" {
		return nil, errors.SetCustomError(constant.ErrStorageIO).WithMessage("failed to read image file: empty path")
	}

	key := objectKey(directory, name)
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		logger.Error("[ImageRead] err minio.GetObject", zap.String("key", key), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to read image file: %s", imagePath))
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		logger.Error("[ImageRead] err read object", zap.String("key", key), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorageIO).WithMessage(fmt.Sprintf("failed to read image file: %s", imagePath))
	}
	return data, nil
}
