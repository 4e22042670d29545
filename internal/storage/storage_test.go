package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/headz-api/internal/config"
)

func TestNewKey(t *testing.T) {
	key := NewKey(PrefixTryOnOriginals, ".webp")
	assert.True(t, strings.HasPrefix(key, "tryon/originals/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
	assert.NotEqual(t, key, NewKey(PrefixTryOnOriginals, "webp"))
}

func TestLocalStore_PutDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "profiles/a.webp", "image/webp", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profiles/a.webp", url)

	got, err := os.ReadFile(filepath.Join(dir, "profiles", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), got)

	key, ok := s.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "profiles/a.webp", key)

	require.NoError(t, s.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, "profiles", "a.webp"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Delete(context.Background(), key), "deleting twice is fine")
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../escape.txt", "text/plain", []byte("x"))
	assert.Error(t, err)

	_, ok := s.KeyFromURL("https://elsewhere.example.com/profiles/a.webp")
	assert.False(t, ok)
}

type fakeObjectAPI struct {
	puts    map[string][]byte
	types   map[string]string
	deletes []string
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutUsesPublicBase(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}, types: map[string]string{}}
	s := &S3Store{client: api, bucket: "headz-photos", publicBase: "https://cdn.example.com"}

	url, err := s.Put(context.Background(), "hairstyles/x.webp", "image/webp", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/hairstyles/x.webp", url)
	assert.Equal(t, []byte("data"), api.puts["headz-photos/hairstyles/x.webp"])
	assert.Equal(t, "image/webp", api.types["hairstyles/x.webp"])

	key, ok := s.KeyFromURL(url)
	require.True(t, ok)
	require.NoError(t, s.Delete(context.Background(), key))
	assert.Equal(t, []string{"hairstyles/x.webp"}, api.deletes)
}

func TestS3PublicBase(t *testing.T) {
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com",
		s3PublicBase(config.StorageConfig{Bucket: "b", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/b",
		s3PublicBase(config.StorageConfig{Bucket: "b", Endpoint: "http://localhost:9000/"}))
	assert.Equal(t, "https://cdn.example.com",
		s3PublicBase(config.StorageConfig{Bucket: "b", PublicURL: "https://cdn.example.com"}))
}
