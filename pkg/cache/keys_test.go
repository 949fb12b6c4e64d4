package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "notifications:u1", NotificationsKey("u1"))
	assert.Equal(t, "notifications:channel:u1", NotificationsChannel("u1"))
	assert.Equal(t, "itinerary:it-1:pdf_downloads", PDFDownloadsKey("it-1"))
}

func TestInvalidateExplore_NilClient(t *testing.T) {
	assert.NoError(t, InvalidateExplore(context.Background(), nil))
}
