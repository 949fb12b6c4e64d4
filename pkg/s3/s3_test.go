package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/itinera-media/photos/a.jpg",
		ObjectURL("http://localhost:9000", "us-east-1", "itinera-media", "photos/a.jpg", false))

	assert.Equal(t,
		"https://minio.internal/itinera-media/photos/a.jpg",
		ObjectURL("https://minio.internal", "", "itinera-media", "photos/a.jpg", true))

	assert.Equal(t,
		"https://itinera-media.s3.eu-west-1.amazonaws.com/photos/a.jpg",
		ObjectURL("", "eu-west-1", "itinera-media", "photos/a.jpg", true))

	assert.Equal(t,
		"https://itinera-media.s3.us-east-1.amazonaws.com/k",
		ObjectURL("", "", "itinera-media", "k", true))
}
