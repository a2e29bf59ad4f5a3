package storage

import (
	"bytes"
	"context"
	"io"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

// ObjectPutter is the subset of *minio.Client the storage needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioStorage struct {
	MinioClient ObjectPutter
}

func NewMinioStorage(minioClient ObjectPutter) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}
