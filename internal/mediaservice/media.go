package mediaservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// uploadURLExpiry bounds how long a presigned upload URL stays usable.
const uploadURLExpiry = 1000 * time.Second

// MediaService hands out presigned PUT URLs so clients upload banner images
// straight to object storage; this service never sees the bytes.
type MediaService struct {
	client *minio.Client
	bucket string
}

func NewMediaService(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MediaService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create object storage client: %w", err)
	}

	return &MediaService{client: client, bucket: bucket}, nil
}

// BannerUploadURL returns a presigned PUT URL for a fresh banner object.
// Object names carry a UUID and a timestamp so uploads never overwrite each
// other.
func (s *MediaService) BannerUploadURL(ctx context.Context) (string, error) {
	objectName := fmt.Sprintf("banners/%s-%d.jpeg", uuid.New().String(), time.Now().UnixMilli())

	u, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, uploadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("could not presign upload URL: %w", err)
	}

	return u.String(), nil
}
