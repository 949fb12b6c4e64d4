package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/logger"
	"itinera/services/explore/internal/entity"
	"itinera/services/explore/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

type ExploreUseCase interface {
	Search(ctx context.Context, f Filter) ([]*entity.Listing, error)
	Tags(ctx context.Context) ([]entity.TagCount, error)
}

type exploreUseCase struct {
	repo        persistent.ExploreRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewExploreUseCase(repo persistent.ExploreRepository, redisClient *redis.Client, logger *logger.Logger) ExploreUseCase {
	return &exploreUseCase{
		repo:        repo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *exploreUseCase) Search(ctx context.Context, f Filter) ([]*entity.Listing, error) {
	items, err := uc.published(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(items, f), nil
}

func (uc *exploreUseCase) Tags(ctx context.Context) ([]entity.TagCount, error) {
	items, err := uc.published(ctx)
	if err != nil {
		return nil, err
	}
	return CountTags(items), nil
}

// published returns the visible catalogue, from Redis when it is warm.
func (uc *exploreUseCase) published(ctx context.Context) ([]*entity.Listing, error) {
	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cache.ExploreKey).Result(); err == nil {
			var items []*entity.Listing
			decodeErr := json.Unmarshal([]byte(cached), &items)
			if decodeErr == nil {
				return items, nil
			}
			uc.logger.Warn("Discarding unreadable explore cache: %v", decodeErr)
		}
	}

	items, joined, err := uc.repo.ListPublished()
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}

	if !joined {
		// Do not cache a catalogue that is missing creator profiles.
		uc.logger.Warn("Creator join failed, serving %d itineraries without creator info", len(items))
		return items, nil
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := uc.redisClient.Set(ctx, cache.ExploreKey, data, cacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache explore results: %v", err)
			}
		}
	}

	return items, nil
}
