package utils

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"showlink/internal/apperr"
	"showlink/internal/config"
)

func NewMinioClient(conf *config.S3Config) (*minio.Client, error) {
	if conf.Endpoint == "" || conf.Bucket == "" || conf.AccessKeyID == "" {
		return nil, apperr.Config(apperr.MsgMissingStorage)
	}
	return minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
}

// ContentTypeByExt guesses a content type from the file extension.
func ContentTypeByExt(name string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	case "json":
		return "application/json"
	}
	return "application/octet-stream"
}

func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// UploadObjectToMinio stores size bytes read from r under objectPath.
func UploadObjectToMinio(ctx context.Context, minioCli *minio.Client, bucket, objectPath string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = ContentTypeByExt(objectPath)
	}
	_, err := minioCli.PutObject(
		ctx,
		bucket,
		strings.TrimPrefix(objectPath, "/"),
		r,
		size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return fmt.Errorf("put object to minio failed: %w", err)
	}
	return nil
}
