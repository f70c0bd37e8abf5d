package s3

import (
	"testing"

	"igclone/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_AWS(t *testing.T) {
	client, err := newClient(&config.Config{AWSRegion: "eu-west-1", S3BucketName: "media"})
	require.NoError(t, err)

	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/posts/1/a.png", client.URL("posts/1/a.png"))
}

func TestURL_MinIO(t *testing.T) {
	client, err := newClient(&config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://localhost:9000/",
		S3UseSSL:     "false",
		S3BucketName: "media",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/media/posts/1/a.png", client.URL("posts/1/a.png"))
}

func TestKeyFromURL(t *testing.T) {
	client, err := newClient(&config.Config{AWSRegion: "us-east-1", S3BucketName: "media"})
	require.NoError(t, err)

	key, ok := client.KeyFromURL(client.URL("posts/7/b.jpg"))
	assert.True(t, ok)
	assert.Equal(t, "posts/7/b.jpg", key)

	_, ok = client.KeyFromURL("https://elsewhere.example/posts/7/b.jpg")
	assert.False(t, ok)

	_, ok = client.KeyFromURL(client.URL(""))
	assert.False(t, ok)
}
