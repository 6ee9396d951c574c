package registry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"binx-portfolio/pkg/models"
)

// BucketSource lists gallery images stored in a Cloud Storage bucket.
// Only objects directly under Prefix are considered.
type BucketSource struct {
	BucketName string
	Prefix     string
	// Signed switches object URLs from public links to 24 hour signed URLs.
	Signed  bool
	Options []option.ClientOption
}

// Name identifies the source in logs
func (s BucketSource) Name() string {
	return "bucket:" + s.BucketName
}

// Files lists the image objects and their URLs in natural name order
func (s BucketSource) Files(ctx context.Context) ([]models.GalleryFile, error) {
	client, err := storage.NewClient(ctx, s.Options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	bucket := client.Bucket(s.BucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: s.Prefix})

	var files []models.GalleryFile
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate objects: %w", err)
		}

		name := strings.TrimPrefix(obj.Name, s.Prefix)
		if name == "" || strings.Contains(name, "/") || !IsImage(name) {
			continue
		}

		objectURL, err := s.objectURL(bucket, obj.Name)
		if err != nil {
			return nil, fmt.Errorf("url for %s: %w", obj.Name, err)
		}
		files = append(files, models.GalleryFile{Name: name, URL: objectURL})
	}

	sortFiles(files)
	return files, nil
}

func (s BucketSource) objectURL(bucket *storage.BucketHandle, object string) (string, error) {
	if s.Signed {
		return bucket.SignedURL(object, &storage.SignedURLOptions{
			Expires: time.Now().Add(24 * time.Hour),
			Method:  "GET",
		})
	}
	return PublicObjectURL(s.BucketName, object), nil
}

// PublicObjectURL is the anonymous HTTPS link of a bucket object
func PublicObjectURL(bucketName, object string) string {
	segments := strings.Split(object, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, strings.Join(segments, "/"))
}
