package services

import (
	"context"
	"strings"
	"testing"

	"movie-catalog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineMinIOService(t *testing.T) *MinIOService {
	t.Helper()

	cfg := &config.MinIOConfig{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "trailers",
		Region:          "us-east-1",
		PublicURL:       bucketURL + "/",
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region: cfg.Region,
	})
	require.NoError(t, err)
	return newMinIOService(client, cfg, newTestLogger())
}

func TestMinIOServiceOwns(t *testing.T) {
	svc := newOfflineMinIOService(t)

	assert.True(t, svc.Owns(bucketURL+"/trailers/tenet_1a2b3c4d.mp4"))
	assert.True(t, svc.Owns(bucketURL+"/trailers/tenet.mp4?X-Amz-Expires=900"))
	assert.False(t, svc.Owns(bucketURL+"/trailers/"))
	assert.False(t, svc.Owns(bucketURL+"/posters/tenet.jpg"))
	assert.False(t, svc.Owns("https://www.youtube.com/watch?v=LdOM0x0XDMo"))
	assert.False(t, svc.Owns(""))
}

func TestMinIOServiceDeleteRejectsForeignURL(t *testing.T) {
	svc := newOfflineMinIOService(t)

	err := svc.DeleteFile(context.Background(), "https://vimeo.com/123")
	assert.EqualError(t, err, `trailer "https://vimeo.com/123" is not stored in bucket trailers`)
}

func TestMinIOServiceGeneratePresignedURL(t *testing.T) {
	svc := newOfflineMinIOService(t)

	presigned, public, err := svc.GeneratePresignedURL(context.Background(), "My Trailer.mp4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(public, bucketURL+"/trailers/My-Trailer_"), public)
	assert.True(t, strings.HasSuffix(public, ".mp4"), public)
	assert.True(t, svc.Owns(public))

	assert.Contains(t, presigned, "localhost:9000/trailers/trailers/My-Trailer_")
	assert.Contains(t, presigned, "X-Amz-Signature=")
}

func TestTrailerObjectName(t *testing.T) {
	name := trailerObjectName(`C:\clips\dune part two.mov`)
	assert.True(t, strings.HasPrefix(name, "trailers/dune-part-two_"), name)
	assert.True(t, strings.HasSuffix(name, ".mov"), name)

	name = trailerObjectName("../../etc/passwd")
	assert.True(t, strings.HasPrefix(name, "trailers/passwd_"), name)

	assert.NotEqual(t, trailerObjectName("a.mp4"), trailerObjectName("a.mp4"))
}
