package fileservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestFileService(t *testing.T) *FileService {
	fs, err := NewFileService(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { fs.Close() })
	return fs
}

func TestSaveAndGetFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fs := newTestFileService(t)
	require.NoError(t, fs.SaveFile(context.Background(), []byte("jpeg-bytes"), "user.jpg", "image/jpeg"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/avatar/user", nil)

	require.NoError(t, fs.GetFile(c, "user.jpg"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "jpeg-bytes", w.Body.String())
	require.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
}

func TestGetMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fs := newTestFileService(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/avatar/none", nil)

	err := fs.GetFile(c, "none.jpg")
	require.ErrorIs(t, err, ErrFileNotFound)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	fs := newTestFileService(t)
	ctx := context.Background()
	require.NoError(t, fs.SaveFile(ctx, []byte("x"), "a.jpg", "image/jpeg"))
	require.NoError(t, fs.DeleteFile(ctx, "a.jpg"))
	require.NoError(t, fs.DeleteFile(ctx, "a.jpg"))
}
