package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoservehq/autoserve-api/internal/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeWebPKeepsSmallImages(t *testing.T) {
	out, err := EncodeWebP(pngBytes(t, 640, 480))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}

func TestEncodeWebPDownscalesWideImages(t *testing.T) {
	out, err := EncodeWebP(pngBytes(t, 2560, 1440))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
}

func TestEncodeWebPRejectsGarbage(t *testing.T) {
	_, err := EncodeWebP([]byte("not an image"))
	assert.Error(t, err)
}

// ======================================================
// UPLOADER
// ======================================================

type mockS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (m *mockS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.input = params
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadImage(t *testing.T) {
	mock := &mockS3{}
	up := NewUploader(mock, &config.Config{
		S3Bucket: "autoserve-media",
		S3Region: "us-east-1",
	})

	url, err := up.UploadImage(context.Background(), "vehicles", pngBytes(t, 100, 100))
	require.NoError(t, err)

	require.NotNil(t, mock.input)
	assert.Equal(t, "autoserve-media", *mock.input.Bucket)
	assert.True(t, strings.HasPrefix(*mock.input.Key, "vehicles/"))
	assert.True(t, strings.HasSuffix(*mock.input.Key, ".webp"))
	assert.Equal(t, "image/webp", *mock.input.ContentType)

	body, err := io.ReadAll(mock.input.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	assert.Equal(t, "https://autoserve-media.s3.us-east-1.amazonaws.com/"+*mock.input.Key, url)
}

func TestUploadImagePublicURL(t *testing.T) {
	mock := &mockS3{}
	up := NewUploader(mock, &config.Config{
		S3Bucket:    "autoserve-media",
		S3Region:    "us-east-1",
		S3PublicURL: "https://cdn.autoserve.example",
	})

	url, err := up.UploadImage(context.Background(), "services", pngBytes(t, 100, 100))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.autoserve.example/services/"))
}

func TestUploadImagePutFailure(t *testing.T) {
	mock := &mockS3{err: errors.New("access denied")}
	up := NewUploader(mock, &config.Config{S3Bucket: "b", S3Region: "r"})

	_, err := up.UploadImage(context.Background(), "vehicles", pngBytes(t, 100, 100))
	assert.Error(t, err)
}

func TestUploadImageBadPayload(t *testing.T) {
	mock := &mockS3{}
	up := NewUploader(mock, &config.Config{S3Bucket: "b", S3Region: "r"})

	_, err := up.UploadImage(context.Background(), "vehicles", []byte("junk"))
	assert.Error(t, err)
	assert.Nil(t, mock.input)
}
