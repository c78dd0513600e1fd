package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
)

type GCSUploader struct {
	client *gcs.Client
	bucket string
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{client: c, bucket: bucket}, nil
}

func (u *GCSUploader) Close() error { return u.client.Close() }

// Upload stores the object and returns its key. Resume files are private;
// nothing in the app serves them back, the row is an audit trail.
func (u *GCSUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	obj := u.client.Bucket(u.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return objectName, nil
}
