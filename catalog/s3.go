package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Source lists posts stored as markdown objects in a bucket. The object
// name without its .md extension is the slug.
type S3Source struct {
	mu sync.RWMutex

	client     *minio.Client
	bucketName string
	prefix     string
}

func NewS3Source(endpoint, bucketName, prefix, accessKey, secretKey string, useSsl bool) (*S3Source, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSsl,
	})
	if err != nil {
		return nil, err
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &S3Source{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}, nil
}

func (*S3Source) Name() string {
	return "s3"
}

func (s *S3Source) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucketName)
	}

	return nil
}

func (s *S3Source) Close(ctx context.Context) error {
	return nil
}

func (s *S3Source) Posts(ctx context.Context) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objectsCh := s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: false,
	})

	var posts []Post
	for object := range objectsCh {
		if object.Err != nil {
			return nil, object.Err
		}

		slug, ok := s3Slug(s.prefix, object.Key)
		if !ok {
			continue
		}
		posts = append(posts, Post{
			Slug:      slug,
			Title:     slug,
			Published: object.LastModified,
		})
	}

	sortPosts(posts)
	return posts, nil
}

// s3Slug returns the slug of a markdown object directly below prefix.
func s3Slug(prefix, key string) (string, bool) {
	name, ok := strings.CutPrefix(key, prefix)
	if !ok || strings.Contains(name, "/") || path.Ext(name) != ".md" {
		return "", false
	}

	slug := strings.TrimSuffix(name, ".md")
	return slug, slug != ""
}
