package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

var (
	storageClient *storage.Client
	bucketName    string
)

// InitGCPStorage initializes the GCP Storage client
func InitGCPStorage() error {
	bucketName = os.Getenv("GCP_BUCKET_NAME")
	if bucketName == "" {
		return fmt.Errorf("GCP_BUCKET_NAME not set")
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create GCP storage client: %v", err)
	}

	storageClient = client
	return nil
}

// ObjectKey builds a collision-safe object name from the upload timestamp,
// a random UUID and the original file name
func ObjectKey(fileName string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.New().String(), fileName)
}

// UploadImage uploads an image buffer and returns the public URL
func UploadImage(fileBuffer []byte, fileName string) (string, error) {
	if storageClient == nil {
		return "", fmt.Errorf("GCP storage client not initialized")
	}

	ctx := context.Background()

	objectName := ObjectKey(fileName)

	bucket := storageClient.Bucket(bucketName)
	obj := bucket.Object(objectName)
	writer := obj.NewWriter(ctx)

	writer.ContentType = "image/jpeg"

	if _, err := writer.Write(fileBuffer); err != nil {
		writer.Close()
		return "", fmt.Errorf("GCS upload failed: %v", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("GCS upload finalization failed: %v", err)
	}

	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName)
	return publicURL, nil
}

// UploadImageFromReader uploads an image from an io.Reader (for multipart uploads)
func UploadImageFromReader(reader io.Reader, fileName string) (string, error) {
	buffer, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	return UploadImage(buffer, fileName)
}

// DeleteImage deletes an image from GCP Storage
func DeleteImage(imageURL string) error {
	if imageURL == "" {
		return nil
	}

	if storageClient == nil {
		return fmt.Errorf("GCP storage client not initialized")
	}

	// Extract object name from URL
	urlParts := strings.Split(imageURL, "/")
	if len(urlParts) == 0 {
		return nil
	}
	objectName := urlParts[len(urlParts)-1]

	ctx := context.Background()
	bucket := storageClient.Bucket(bucketName)
	obj := bucket.Object(objectName)

	if err := obj.Delete(ctx); err != nil {
		// Don't fail if file doesn't exist
		return nil
	}

	return nil
}
