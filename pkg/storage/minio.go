package storage

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioPrefix = "categories"

// MinIOBackend stores objects in an S3-compatible bucket.
type MinIOBackend struct {
	client *minio.Client
	bucket string
}

type MinIOOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinIOBackend connects to the endpoint and creates the bucket if missing.
func NewMinIOBackend(ctx context.Context, opts MinIOOptions) (*MinIOBackend, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOBackend{client: client, bucket: opts.Bucket}, nil
}

func (b *MinIOBackend) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucket, objectKey(name), r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (b *MinIOBackend) Get(ctx context.Context, name string) (*Object, error) {
	key := objectKey(name)
	info, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return &Object{Body: obj, Size: info.Size, ContentType: info.ContentType}, nil
}

func objectKey(name string) string {
	return path.Join(minioPrefix, path.Base(name))
}
