package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// CloudStorageClient is the reference-based media store: complaint media is
// uploaded as objects under complaints/{id}/ and the document carries URLs
// instead of inline payloads.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

func (c *CloudStorageClient) StoreImage(ctx context.Context, complaintID string, index int, data []byte) (string, error) {
	objectName := fmt.Sprintf("complaints/%s/image_%d.jpg", complaintID, index)
	return c.upload(ctx, objectName, "image/jpeg", data)
}

func (c *CloudStorageClient) StoreVideo(ctx context.Context, complaintID string, data []byte) (string, error) {
	objectName := fmt.Sprintf("complaints/%s/video.mp4", complaintID)
	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = "video/mp4"
	}
	return c.upload(ctx, objectName, contentType, data)
}

func (c *CloudStorageClient) upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy media to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

// DeleteComplaintMedia removes a previously uploaded object by its public URL.
func (c *CloudStorageClient) DeleteComplaintMedia(ctx context.Context, mediaURL string) error {
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(mediaURL, prefix) {
		return fmt.Errorf("invalid GCS URL format")
	}

	path := mediaURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	obj := c.client.Bucket(c.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete media object: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
