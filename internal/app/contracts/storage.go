package contracts

import (
	"context"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error)
}
