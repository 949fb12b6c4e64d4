package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ExploreKey holds the serialized list of publicly visible itineraries.
const ExploreKey = "explore:published"

// InvalidateExplore drops the discovery cache after a visibility change.
// A nil client is a no-op.
func InvalidateExplore(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, ExploreKey).Err()
}

func NotificationsKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func NotificationsChannel(userID string) string {
	return fmt.Sprintf("notifications:channel:%s", userID)
}

func PDFDownloadsKey(itineraryID string) string {
	return fmt.Sprintf("itinerary:%s:pdf_downloads", itineraryID)
}
