package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocalStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewLocalStorage(tempDir, "svg-files", "http://localhost:8080/files")
	require.NoError(t, err)
	require.NotNil(t, storage)
	require.Equal(t, filepath.Join(tempDir, "svg-files"), storage.basePath)

	_, err = os.Stat(storage.basePath)
	require.NoError(t, err, "Bucket directory should be created")
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	objectPath := "0b7e4bd4-1a5e-4c55-9d9b-5f2f4f2b6a11/V1StGXR8_Z5jdHi6B-myT.svg"
	content := `<svg xmlns="http://www.w3.org/2000/svg"/>`

	err = storage.Save(ctx, objectPath, strings.NewReader(content), int64(len(content)), "image/svg+xml")
	require.NoError(t, err)

	expectedPath, err := storage.getPath(objectPath)
	require.NoError(t, err)
	fileInfo, err := os.Stat(expectedPath)
	require.NoError(t, err, "File should exist after save")
	require.Equal(t, int64(len(content)), fileInfo.Size())

	readCloser, err := storage.Get(ctx, objectPath)
	require.NoError(t, err)
	retrievedContent, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	readCloser.Close()
	require.Equal(t, content, string(retrievedContent))

	err = storage.Delete(ctx, objectPath)
	require.NoError(t, err)

	_, err = os.Stat(expectedPath)
	require.True(t, os.IsNotExist(err), "File should not exist after delete")
}

func TestLocalStorage_GetNonExistent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	_, err = storage.Get(context.Background(), "missing/file.svg")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_DeleteNonExistent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(context.Background(), "missing/file.svg"))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	for _, bad := range []string{"", "/etc/passwd", "../avatars/a.png", "a/../../b", "..", `a\b`} {
		err := storage.Save(ctx, bad, strings.NewReader("x"), 1, "")
		require.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestLocalStorage_ShortWriteLeavesNothing(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	err = storage.Save(ctx, "u/short.svg", strings.NewReader("abc"), 10, "image/svg+xml")
	require.Error(t, err)

	_, err = storage.Get(ctx, "u/short.svg")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_SaveWithLargeData(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "svg-files", "")
	require.NoError(t, err)

	largeContent := bytes.Repeat([]byte{'a'}, 1024*1024)

	err = storage.Save(context.Background(), "u/large.svg", bytes.NewReader(largeContent), int64(len(largeContent)), "")
	require.NoError(t, err)

	expectedPath, err := storage.getPath("u/large.svg")
	require.NoError(t, err)
	fileInfo, err := os.Stat(expectedPath)
	require.NoError(t, err)
	require.Equal(t, int64(len(largeContent)), fileInfo.Size())
}

func TestLocalStorage_PublicURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "avatars", "http://localhost:8080/files/")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/files/avatars/u-1.png", storage.PublicURL("u-1.png"))
}

func TestS3Storage_PublicURL(t *testing.T) {
	s := NewS3Storage(nil, "avatars", "eu-central-1", "")
	require.Equal(t, "https://avatars.s3.eu-central-1.amazonaws.com/u-1.png", s.PublicURL("u-1.png"))

	s = NewS3Storage(nil, "avatars", "eu-central-1", "https://cdn.example.com")
	require.Equal(t, "https://cdn.example.com/avatars/u-1.png", s.PublicURL("u-1.png"))
}

func TestObjectPathOf(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir(), "avatars", "http://localhost:8080/files")
	require.NoError(t, err)
	s3 := NewS3Storage(nil, "avatars", "eu-central-1", "")

	for _, b := range []Bucket{local, s3} {
		objectPath, ok := ObjectPathOf(b, b.PublicURL("u-1.png"))
		require.True(t, ok)
		require.Equal(t, "u-1.png", objectPath)
	}

	_, ok := ObjectPathOf(local, "https://elsewhere.example/avatars/u-1.png")
	require.False(t, ok)
	_, ok = ObjectPathOf(local, local.PublicURL(""))
	require.False(t, ok)
}

type failingBucket struct {
	Bucket
	deleted []string
}

func (f *failingBucket) Delete(_ context.Context, p string) error {
	f.deleted = append(f.deleted, p)
	if p == "bad" {
		return errors.New("boom")
	}
	return nil
}

func TestJanitorReleaseContinuesPastFailures(t *testing.T) {
	var logs bytes.Buffer
	bucket := &failingBucket{}
	j := NewJanitor(bucket, slog.New(slog.NewTextHandler(&logs, nil)))

	j.Release(context.Background(), []string{"a", "bad", "b"})
	require.Equal(t, []string{"a", "bad", "b"}, bucket.deleted)
	require.Contains(t, logs.String(), "failed to delete blob")
}
