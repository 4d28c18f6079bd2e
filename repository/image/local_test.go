package image

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "ads-images")
	repo := NewLocalRepository()

	ref, err := repo.Save(ctx, []byte("image content"), "photo.JPG", dir, "/ads-images/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/ads-images/"), "ref = %s", ref)
	assert.True(t, strings.HasSuffix(ref, ".jpg"), "ref = %s", ref)

	got, err := repo.Read(ctx, ref, dir)
	require.NoError(t, err)
	assert.Equal(t, []byte("image content"), got)
}

func TestLocal_SaveGeneratesUniqueNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewLocalRepository()

	first, err := repo.Save(ctx, []byte("a"), "a.png", dir, "/avatars/")
	require.NoError(t, err)
	second, err := repo.Save(ctx, []byte("b"), "a.png", dir, "/avatars/")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocal_SaveWithoutExtension(t *testing.T) {
	ref, err := NewLocalRepository().Save(context.Background(), []byte("x"), "blob", t.TempDir(), "/avatars/")
	require.NoError(t, err)
	assert.NotContains(t, strings.TrimPrefix(ref, "/avatars/"), ".")
}

func TestLocal_SaveFailsOnUnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	// a regular file where the directory should be
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewLocalRepository().Save(context.Background(), []byte("x"), "a.jpg", filepath.Join(blocker, "sub"), "/ads-images/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrStorageIO))
}

func TestLocal_Delete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewLocalRepository()

	ref, err := repo.Save(ctx, []byte("bytes"), "a.jpg", dir, "/ads-images/")
	require.NoError(t, err)

	repo.Delete(ctx, ref, dir)

	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(ref, "/ads-images/")))
	assert.True(t, os.IsNotExist(err))

	// missing references and files are silently ignored
	repo.Delete(ctx, "", dir)
	repo.Delete(ctx, ref, dir)
}

func TestLocal_ReadMissing(t *testing.T) {
	_, err := NewLocalRepository().Read(context.Background(), "/ads-images/nope.jpg", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrStorageIO))
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "x.jpg", objectName("/ads-images/x.jpg"))
	assert.Equal(t, "x.jpg", objectName("x.jpg"))
	assert.Equal(t, "x.jpg", objectName(`..\..\x.jpg`))
	assert.Equal(t, "", objectName(""))
	assert.Equal(t, "ads-images/x.jpg", objectKey("./ads-images", "x.jpg"))
}
