package fileservice

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ErrFileNotFound is returned when the requested object does not exist in the bucket.
var ErrFileNotFound = errors.New("file not found")

// FileService stores uploaded files in a gocloud.dev bucket.
// bucketURL examples: "mem://", "file:///var/lib/devconnect/avatars", "s3://my-bucket?region=eu-west-1".
type FileService struct {
	bucket *blob.Bucket
}

func NewFileService(ctx context.Context, bucketURL string) (*FileService, error) {
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return &FileService{bucket: b}, nil
}

func (fs *FileService) SaveFile(ctx context.Context, data []byte, filename string, contentType string) error {
	w, err := fs.bucket.NewWriter(ctx, filename, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return err
	}

	if _, err = w.Write(data); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

func (fs *FileService) DeleteFile(ctx context.Context, filename string) error {
	err := fs.bucket.Delete(ctx, filename)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}
	return err
}

// GetFile streams filename to the response, answering 404 when it does not exist.
func (fs *FileService) GetFile(ctx *gin.Context, filename string) error {
	reader, err := fs.bucket.NewReader(ctx, filename, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			ctx.AbortWithStatus(http.StatusNotFound)
			return ErrFileNotFound
		}
		log.Error().Err(err).Str("file", filename).Msg("Failed to open file")
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return err
	}
	defer reader.Close()

	ctx.Header("Content-Type", reader.ContentType())
	ctx.Status(http.StatusOK)
	if _, err = io.Copy(ctx.Writer, reader); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("Failed to stream file")
		return err
	}
	return nil
}

func (fs *FileService) Close() error {
	return fs.bucket.Close()
}
