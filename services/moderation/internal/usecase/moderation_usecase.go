package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/logger"
	"itinera/pkg/queue"
	"itinera/services/moderation/internal/entity"
	"itinera/services/moderation/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotFound      = errors.New("itinerary not found")
	ErrInvalidStatus = errors.New("status must be one of all, pending, approved")
)

type ModerationUseCase interface {
	List(status entity.StatusFilter) ([]*entity.Submission, error)
	SetApproval(ctx context.Context, id string, approved bool) (*entity.Submission, error)
}

type moderationUseCase struct {
	repo        persistent.ModerationRepository
	publisher   queue.Publisher
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewModerationUseCase(
	repo persistent.ModerationRepository,
	publisher queue.Publisher,
	redisClient *redis.Client,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		repo:        repo,
		publisher:   publisher,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *moderationUseCase) List(status entity.StatusFilter) ([]*entity.Submission, error) {
	if status == "" {
		status = entity.StatusAll
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	all, err := uc.repo.ListSubmissions()
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	return FilterByStatus(all, status), nil
}

// SetApproval approves or revokes one itinerary and returns its new state.
func (uc *moderationUseCase) SetApproval(ctx context.Context, id string, approved bool) (*entity.Submission, error) {
	if err := uc.repo.SetApproved(id, approved); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update itinerary: %w", err)
	}

	sub, err := uc.repo.GetSubmission(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload itinerary: %w", err)
	}

	if err := cache.InvalidateExplore(ctx, uc.redisClient); err != nil {
		uc.logger.Warn("Failed to invalidate explore cache: %v", err)
	}

	uc.notifyCreator(sub)

	return sub, nil
}

func (uc *moderationUseCase) notifyCreator(sub *entity.Submission) {
	if uc.publisher == nil {
		return
	}

	task := queue.Task{
		Type:        queue.TaskItineraryRevoked,
		UserID:      sub.CreatorID,
		ItineraryID: sub.ID,
		Title:       sub.Title,
		Message:     fmt.Sprintf("%q was removed from explore", sub.Title),
		Priority:    5,
		CreatedAt:   time.Now(),
	}
	if sub.IsApproved {
		task.Type = queue.TaskItineraryApproved
		task.Message = fmt.Sprintf("%q is approved and live on explore", sub.Title)
		task.Priority = 8
	}

	if err := uc.publisher.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("Failed to publish %s task: %v", task.Type, err)
	}
}

// FilterByStatus keeps the submissions matching status, in order.
func FilterByStatus(list []*entity.Submission, status entity.StatusFilter) []*entity.Submission {
	out := make([]*entity.Submission, 0, len(list))
	for _, s := range list {
		if status.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// ApplyApproval models the optimistic patch an admin client applies to its
// cached list after a successful approve call: a copy of list where only the
// row with id has its approval flag replaced. Other rows are shared with the
// input. The server does not call it.
func ApplyApproval(list []*entity.Submission, id string, approved bool) []*entity.Submission {
	out := make([]*entity.Submission, len(list))
	for i, s := range list {
		if s.ID == id {
			patched := *s
			patched.IsApproved = approved
			out[i] = &patched
			continue
		}
		out[i] = s
	}
	return out
}
