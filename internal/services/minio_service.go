package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const (
	trailerPrefix = "trailers/"
	presignExpiry = 15 * time.Minute
)

// TrailerStorage stores uploaded trailer files.
type TrailerStorage interface {
	GeneratePresignedURL(ctx context.Context, filename string) (presignedURL, publicURL string, err error)
	// Owns reports whether a trailer URL points at an object in this storage.
	Owns(trailerURL string) bool
	DeleteFile(ctx context.Context, trailerURL string) error
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := newMinIOService(minioClient, cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func newMinIOService(client *minio.Client, cfg *config.MinIOConfig, logger *logrus.Logger) *MinIOService {
	return &MinIOService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s*"]
			}
		]
	}`, s.bucket, trailerPrefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read for trailers")
	return nil
}

func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectPath := trailerObjectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectPath

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

func (s *MinIOService) Owns(trailerURL string) bool {
	_, ok := s.objectPath(trailerURL)
	return ok
}

func (s *MinIOService) DeleteFile(ctx context.Context, trailerURL string) error {
	objectPath, ok := s.objectPath(trailerURL)
	if !ok {
		return fmt.Errorf("trailer %q is not stored in bucket %s", trailerURL, s.bucket)
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

// objectPath extracts the object key from a public trailer URL.
func (s *MinIOService) objectPath(trailerURL string) (string, bool) {
	if s.publicURL == "" || !strings.HasPrefix(trailerURL, s.publicURL+"/") {
		return "", false
	}
	objectPath := strings.TrimPrefix(trailerURL, s.publicURL+"/")
	if idx := strings.IndexAny(objectPath, "?#"); idx != -1 {
		objectPath = objectPath[:idx]
	}
	if !strings.HasPrefix(objectPath, trailerPrefix) || objectPath == trailerPrefix {
		return "", false
	}
	return objectPath, true
}

func trailerObjectName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, base)
	ext := path.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		name = "trailer"
	}
	return fmt.Sprintf("%s%s_%s%s", trailerPrefix, name, uuid.New().String()[:8], ext)
}
