// Package media wraps the external image host. Assets are uploaded to an
// S3-compatible bucket and served from a public URL; the caller persists the
// returned key and URL.
package media

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"showcase/internal/middleware"
)

// Object identifies an uploaded asset: its key within the bucket's folder
// namespace and the durable public URL it is served from.
type Object struct {
	Key string
	URL string
}

// Store is the media host client. Upload submits raw bytes and returns the
// stored object; callers must not retry a failed upload. Delete is
// best-effort from the caller's perspective.
type Store interface {
	Upload(ctx context.Context, content []byte, contentType string) (Object, error)
	Delete(ctx context.Context, key string) error
}

// Config carries the media store settings. It is passed explicitly at
// construction; the client reads no ambient state.
type Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Folder    string
	BaseURL   string
}

// S3Store implements Store against an S3-compatible object store.
type S3Store struct {
	client  *s3.S3
	bucket  string
	folder  string
	baseURL string
}

// NewS3Store builds an S3-backed media store from explicit configuration.
func NewS3Store(cfg Config) (*S3Store, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Store{
		client:  s3.New(sess),
		bucket:  cfg.Bucket,
		folder:  strings.Trim(cfg.Folder, "/"),
		baseURL: baseURL,
	}, nil
}

// Upload stores the content under a fresh key in the configured folder and
// returns the object. The bytes are forwarded untouched.
func (s *S3Store) Upload(ctx context.Context, content []byte, contentType string) (Object, error) {
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	key := path.Join(s.folder, uuid.NewString()+extensionFor(contentType))

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		middleware.MediaStoreOps.WithLabelValues("upload", "error").Inc()
		return Object{}, err
	}

	middleware.MediaStoreOps.WithLabelValues("upload", "ok").Inc()
	return Object{
		Key: key,
		URL: s.baseURL + "/" + key,
	}, nil
}

// Delete requests removal of a previously uploaded asset.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		middleware.MediaStoreOps.WithLabelValues("delete", "error").Inc()
		return err
	}
	middleware.MediaStoreOps.WithLabelValues("delete", "ok").Inc()
	return nil
}

// KeyFromURL derives the asset key from a stored public URL: the last path
// segment minus its extension, namespaced under the folder prefix. Only used
// for posts persisted before the key was stored explicitly.
func KeyFromURL(rawURL, folder string) string {
	p := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		p = parsed.Path
	}
	filename := path.Base(p)
	if filename == "." || filename == "/" || filename == "" {
		return ""
	}
	name := strings.TrimSuffix(filename, path.Ext(filename))
	if name == "" {
		return ""
	}
	return path.Join(strings.Trim(folder, "/"), name)
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
