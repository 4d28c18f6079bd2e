package image

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/ads-board/cmd/config"
)

// ImageRepository stores image bytes under generated names and addresses them by path reference.
type ImageRepository interface {
	// Save writes data under a new unique name keeping originalName's extension and
	// returns urlPrefix + name.
	Save(ctx context.Context, data []byte, originalName, directory, urlPrefix string) (string, error)
	// Delete removes the file referenced by imagePath. Empty references are ignored and
	// failures are only logged.
	Delete(ctx context.Context, imagePath, directory string)
	// Read returns the bytes of the file referenced by imagePath.
	Read(ctx context.Context, imagePath, directory string) ([]byte, error)
}

// New picks the store named by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (ImageRepository, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalRepository(), nil
	case "minio":
		return NewMinIORepository(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func generateFilename(originalName string) string {
	return uuid.NewString() + extension(originalName)
}

func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return strings.ToLower(ext)
}

// objectName is the last segment of a stored reference such as "/ads-images/x.jpg".
func objectName(imagePath string) string {
	name := path.Base(strings.ReplaceAll(imagePath, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
