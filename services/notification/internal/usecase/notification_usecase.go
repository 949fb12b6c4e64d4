package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itinera/pkg/logger"
	"itinera/pkg/queue"
	"itinera/services/notification/internal/entity"
	"itinera/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
)

var (
	ErrUnknownTask      = errors.New("unknown notification type")
	ErrMissingRecipient = errors.New("task has no recipient")
	ErrQueueUnavailable = errors.New("queue client is not available")
)

// QueueInspector is satisfied by queue.Client.
type QueueInspector interface {
	GetQueueLength() (int, error)
}

type NotificationUseCase interface {
	HandleTask(task queue.Task) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
	QueueLength() (int, error)
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	inbox            persistent.Inbox
	queue            QueueInspector
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	inbox persistent.Inbox,
	queue QueueInspector,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		inbox:            inbox,
		queue:            queue,
		logger:           logger,
	}
}

// BuildNotification turns a queue task into the message shown to its
// recipient. actorName is used for purchase and review notices.
func BuildNotification(task queue.Task, actorName string, now time.Time) (*entity.Notification, error) {
	if task.UserID == "" {
		return nil, ErrMissingRecipient
	}
	if actorName == "" {
		actorName = "Someone"
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    task.UserID,
		Type:      task.Type,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Data:      map[string]interface{}{},
	}
	if task.ItineraryID != "" {
		n.Data["itinerary_id"] = task.ItineraryID
	}
	if task.ActorID != "" {
		n.Data["actor_id"] = task.ActorID
	}

	switch task.Type {
	case queue.TaskItineraryApproved:
		n.Title = "Itinerary approved"
		n.Message = fmt.Sprintf("%q is now live in Explore", task.Title)
	case queue.TaskItineraryRevoked:
		n.Title = "Approval revoked"
		n.Message = fmt.Sprintf("%q was removed from Explore", task.Title)
	case queue.TaskItineraryPurchased:
		n.Title = "New sale!"
		n.Message = fmt.Sprintf("%s bought %q", actorName, task.Title)
		n.Data["amount"] = task.Amount
	case queue.TaskNewReview:
		n.Title = "New review"
		n.Message = fmt.Sprintf("%s rated %q %d/5", actorName, task.Title, task.Rating)
		n.Data["rating"] = task.Rating
	case queue.TaskCreatorVerified:
		n.Title = "You're verified"
		n.Message = "Your creator profile now shows the verified badge"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, task.Type)
	}

	if len(n.Data) == 0 {
		n.Data = nil
	}
	return n, nil
}

// HandleTask stores and publishes one task. Malformed tasks are dropped,
// storage failures are returned so the broker redelivers.
func (uc *notificationUseCase) HandleTask(task queue.Task) error {
	uc.logger.Info("[NOTIFICATION HANDLER] Processing %s task for user %s", task.Type, task.UserID)

	actorName := ""
	if task.ActorID != "" {
		name, err := uc.notificationRepo.GetDisplayName(task.ActorID)
		if err != nil {
			uc.logger.Warn("[NOTIFICATION HANDLER] Failed to resolve actor name for %s: %v", task.ActorID, err)
		} else {
			actorName = name
		}
	}

	n, err := BuildNotification(task, actorName, time.Now())
	if err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Dropping task: %v, task=%+v", err, task)
		return nil
	}

	if err := uc.inbox.Push(context.Background(), n); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to deliver to user %s: %v", task.UserID, err)
		return err
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Delivered %s notification to user %s", task.Type, task.UserID)
	return nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	return uc.inbox.List(ctx, userID, limit, offset)
}

func (uc *notificationUseCase) QueueLength() (int, error) {
	if uc.queue == nil {
		return 0, ErrQueueUnavailable
	}
	return uc.queue.GetQueueLength()
}
