package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/logger"
	"itinera/pkg/queue"
	"itinera/services/review/internal/entity"
	"itinera/services/review/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("creators cannot review their own itinerary")
)

const (
	MinRating        = 1
	MaxRating        = 5
	maxCommentLength = 2000
)

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewUseCase interface {
	Submit(ctx context.Context, userID, itineraryID string, in ReviewInput) (*entity.Review, error)
	List(itineraryID string) (*entity.ReviewList, error)
	Mine(itineraryID, userID string) (*entity.Review, error)
}

type reviewUseCase struct {
	reviewRepo  persistent.ReviewRepository
	publisher   queue.Publisher
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	publisher queue.Publisher,
	redisClient *redis.Client,
	logger *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo:  reviewRepo,
		publisher:   publisher,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Aggregate returns the mean rating rounded to two decimals and the count.
func Aggregate(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*100) / 100, len(ratings)
}

func (uc *reviewUseCase) Submit(ctx context.Context, userID, itineraryID string, in ReviewInput) (*entity.Review, error) {
	if in.Rating < MinRating || in.Rating > MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, MinRating, MaxRating)
	}
	comment := strings.TrimSpace(in.Comment)
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrValidation)
	}

	target, err := uc.reviewRepo.GetTarget(itineraryID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, fmt.Errorf("%w: itinerary not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load itinerary: %w", err)
	}
	if target.CreatorID == userID {
		return nil, ErrForbidden
	}

	review, created, err := uc.reviewRepo.Upsert(&entity.Review{
		ItineraryID: itineraryID,
		UserID:      userID,
		Rating:      in.Rating,
		Comment:     comment,
	})
	if err != nil {
		uc.logger.Error("Failed to save review for %s: %v", itineraryID, err)
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	// Ratings feed the explore sort.
	if err := cache.InvalidateExplore(ctx, uc.redisClient); err != nil {
		uc.logger.Warn("Failed to invalidate explore cache: %v", err)
	}

	if created && uc.publisher != nil {
		task := queue.Task{
			Type:        queue.TaskNewReview,
			UserID:      target.CreatorID,
			ActorID:     userID,
			ItineraryID: itineraryID,
			Title:       target.Title,
			Message:     fmt.Sprintf("New %d-star review on %q", in.Rating, target.Title),
			Rating:      in.Rating,
			Priority:    4,
			CreatedAt:   time.Now(),
		}
		if err := uc.publisher.PublishNotificationTask(task); err != nil {
			uc.logger.Warn("Failed to publish %s task: %v", task.Type, err)
		}
	}

	return review, nil
}

func (uc *reviewUseCase) List(itineraryID string) (*entity.ReviewList, error) {
	reviews, err := uc.reviewRepo.ListByItinerary(itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	avg, count := Aggregate(ratings)

	return &entity.ReviewList{Reviews: reviews, Count: count, AverageRating: avg}, nil
}

func (uc *reviewUseCase) Mine(itineraryID, userID string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByUser(itineraryID, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, fmt.Errorf("%w: no review yet", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return review, nil
}
