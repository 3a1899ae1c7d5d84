package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SpeechRoute is where the server exposes Files.SpeechDir.
const SpeechRoute = "/static/speech/"

// objectAudioStore keeps audio in a MinIO (or any S3-compatible) bucket.
type objectAudioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewObjectAudioStore connects to the bucket described by cfg, creating the
// bucket if it does not exist yet.
func NewObjectAudioStore(ctx context.Context, cfg config.Objects, log *logger.Logger) (AudioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewObjectAudioStore").Str("bucket", cfg.Bucket).Msg("error checking bucket")
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Err(err).Str("func", "NewObjectAudioStore").Str("bucket", cfg.Bucket).Msg("error creating bucket")
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = strings.TrimRight(client.EndpointURL().String(), "/") + "/" + cfg.Bucket
	}

	log.Info().Str("func", "NewObjectAudioStore").Str("bucket", cfg.Bucket).Msg("speech audio goes to object storage")
	return &objectAudioStore{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

func (s *objectAudioStore) Put(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "objectAudioStore.Put").Str("object", name).Msg("error uploading audio")
		return "", fmt.Errorf("%w: %w", ErrAudioNotStored, err)
	}
	return s.publicURL + "/" + url.PathEscape(name), nil
}

// fileAudioStore writes audio into a directory the HTTP server serves
// under SpeechRoute.
type fileAudioStore struct {
	dir     string
	baseURL string
}

// NewFileAudioStore creates dir if needed. baseURL is the server's public
// URL; empty yields root-relative links.
func NewFileAudioStore(dir, baseURL string) (AudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create speech directory: %w", err)
	}
	return &fileAudioStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *fileAudioStore) Put(ctx context.Context, name string, body io.Reader, _ int64, _ string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: invalid name %q", ErrAudioNotStored, name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioNotStored, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		logger.FromContext(ctx).Err(err).Str("func", "fileAudioStore.Put").Str("file", name).Msg("error writing audio")
		return "", fmt.Errorf("%w: %w", ErrAudioNotStored, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioNotStored, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioNotStored, err)
	}

	return s.baseURL + SpeechRoute + url.PathEscape(name), nil
}
