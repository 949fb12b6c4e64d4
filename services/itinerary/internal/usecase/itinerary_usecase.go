package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"itinera/pkg/cache"
	"itinera/pkg/logger"
	"itinera/services/itinerary/internal/entity"
	"itinera/services/itinerary/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("itinerary not found")
	ErrForbidden  = errors.New("forbidden")
	ErrNotReady   = errors.New("itinerary is not ready to publish")
)

const maxPhotoSize = 10 << 20

// ObjectStorage is satisfied by the S3 client.
type ObjectStorage interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
}

type SaveInput struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Location     string                  `json:"location"`
	Price        *float64                `json:"price"`
	Tags         []string                `json:"tags"`
	DurationDays int                     `json:"duration_days"`
	Content      entity.ItineraryContent `json:"content"`
}

// Viewer identifies the caller; an empty UserID is an anonymous visitor.
type Viewer struct {
	UserID string
	Role   string
}

type ItineraryUseCase interface {
	CreateItinerary(creatorID string, in SaveInput) (*entity.Itinerary, error)
	UpdateItinerary(id, userID string, in SaveInput) (*entity.Itinerary, error)
	GetItinerary(id string, viewer Viewer) (*entity.Itinerary, bool, error)
	GetProgress(id, userID string) (*entity.Progress, error)
	ListMine(userID string) ([]*entity.Itinerary, error)
	SetPublished(id, userID string, published bool) (*entity.Itinerary, error)
	DeleteItinerary(id, userID string) error
	ExportPDF(id string, viewer Viewer) ([]byte, *ExportSummary, error)
	AddPhoto(id, userID, caption string, file *multipart.FileHeader) (*entity.TravelerPhoto, error)
	ListPhotos(id string) ([]*entity.TravelerPhoto, error)
}

type itineraryUseCase struct {
	repo          persistent.ItineraryRepository
	storage       ObjectStorage
	redisClient   *redis.Client
	publicBaseURL string
	logger        *logger.Logger
}

func NewItineraryUseCase(
	repo persistent.ItineraryRepository,
	storage ObjectStorage,
	redisClient *redis.Client,
	publicBaseURL string,
	logger *logger.Logger,
) ItineraryUseCase {
	return &itineraryUseCase{
		repo:          repo,
		storage:       storage,
		redisClient:   redisClient,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Denormalize copies the listing fields out of the content when the request
// does not set them explicitly and validates the result.
func Denormalize(in SaveInput) (SaveInput, float64, error) {
	in.Content.NormalizeDays()

	if strings.TrimSpace(in.Title) == "" {
		in.Title = in.Content.Cover.Title
	}
	if in.Description == "" {
		in.Description = in.Content.Cover.Description
	}
	if in.Location == "" {
		in.Location = in.Content.Cover.Destination
	}
	if in.DurationDays == 0 {
		in.DurationDays = len(in.Content.DailyItinerary)
	}

	var price float64
	switch {
	case in.Price != nil:
		price = *in.Price
	case in.Content.Cover.Price != nil:
		price = *in.Content.Cover.Price
	}

	if strings.TrimSpace(in.Title) == "" {
		return in, 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if price < 0 {
		return in, 0, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if in.DurationDays < 0 {
		return in, 0, fmt.Errorf("%w: duration_days must be non-negative", ErrValidation)
	}

	tags := make([]string, 0, len(in.Tags))
	seen := make(map[string]bool, len(in.Tags))
	for _, t := range in.Tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	in.Tags = tags

	return in, price, nil
}

func (uc *itineraryUseCase) CreateItinerary(creatorID string, in SaveInput) (*entity.Itinerary, error) {
	in, price, err := Denormalize(in)
	if err != nil {
		return nil, err
	}

	it := &entity.Itinerary{
		CreatorID:    creatorID,
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Price:        price,
		Tags:         in.Tags,
		DurationDays: in.DurationDays,
		Content:      in.Content,
	}

	if err := uc.repo.Create(it); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}

	uc.logger.Info("Itinerary %s created by %s", it.ID, creatorID)
	return it, nil
}

func (uc *itineraryUseCase) UpdateItinerary(id, userID string, in SaveInput) (*entity.Itinerary, error) {
	it, err := uc.owned(id, userID)
	if err != nil {
		return nil, err
	}

	in, price, err := Denormalize(in)
	if err != nil {
		return nil, err
	}

	it.Title = in.Title
	it.Description = in.Description
	it.Location = in.Location
	it.Price = price
	it.Tags = in.Tags
	it.DurationDays = in.DurationDays
	it.Content = in.Content

	if err := uc.repo.Update(it); err != nil {
		return nil, fmt.Errorf("failed to save itinerary: %w", err)
	}

	if it.IsPublished {
		uc.invalidateExplore()
	}
	return it, nil
}

// GetItinerary returns the row and whether the caller may see the full guide.
// Other callers get the preview cut of the content.
func (uc *itineraryUseCase) GetItinerary(id string, viewer Viewer) (*entity.Itinerary, bool, error) {
	it, err := uc.find(id)
	if err != nil {
		return nil, false, err
	}

	full, err := uc.hasFullAccess(it, viewer)
	if err != nil {
		return nil, false, err
	}

	isOwner := viewer.UserID == it.CreatorID
	if !isOwner && viewer.Role != "admin" && !(it.IsPublished && it.IsApproved) {
		return nil, false, ErrNotFound
	}

	if !isOwner {
		if err := uc.repo.IncrementViews(id); err != nil {
			uc.logger.Warn("Failed to count view of %s: %v", id, err)
		}
	}

	if !full {
		it.Content = it.Content.Preview(PreviewDays)
	}
	return it, full, nil
}

func (uc *itineraryUseCase) GetProgress(id, userID string) (*entity.Progress, error) {
	it, err := uc.owned(id, userID)
	if err != nil {
		return nil, err
	}
	p := entity.ProgressOf(&it.Content)
	return &p, nil
}

func (uc *itineraryUseCase) ListMine(userID string) ([]*entity.Itinerary, error) {
	return uc.repo.ListByCreator(userID)
}

func (uc *itineraryUseCase) SetPublished(id, userID string, published bool) (*entity.Itinerary, error) {
	it, err := uc.owned(id, userID)
	if err != nil {
		return nil, err
	}

	if published && !entity.ReadyToPublish(&it.Content) {
		return nil, ErrNotReady
	}

	if err := uc.repo.SetPublished(id, published); err != nil {
		return nil, fmt.Errorf("failed to update publish state: %w", err)
	}
	it.IsPublished = published

	uc.invalidateExplore()
	return it, nil
}

func (uc *itineraryUseCase) DeleteItinerary(id, userID string) error {
	if _, err := uc.owned(id, userID); err != nil {
		return err
	}

	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}

	uc.invalidateExplore()
	return nil
}

func (uc *itineraryUseCase) ExportPDF(id string, viewer Viewer) ([]byte, *ExportSummary, error) {
	it, err := uc.find(id)
	if err != nil {
		return nil, nil, err
	}

	if viewer.UserID != it.CreatorID && viewer.Role != "admin" && !(it.IsPublished && it.IsApproved) {
		return nil, nil, ErrNotFound
	}

	full, err := uc.hasFullAccess(it, viewer)
	if err != nil {
		return nil, nil, err
	}

	creatorName, err := uc.repo.GetCreatorName(it.CreatorID)
	if err != nil {
		uc.logger.Warn("Failed to load creator of %s: %v", id, err)
	}

	meta := ExportMeta{
		ItineraryID:  it.ID,
		Title:        it.Title,
		Description:  it.Description,
		CreatorName:  creatorName,
		Location:     it.Location,
		Price:        it.Price,
		DurationDays: it.DurationDays,
	}
	if uc.publicBaseURL != "" {
		meta.LinkURL = fmt.Sprintf("%s/itineraries/%s", uc.publicBaseURL, it.ID)
	}

	data, summary, err := RenderPDF(it.Content, meta, full)
	if err != nil {
		return nil, nil, err
	}

	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := uc.redisClient.Incr(ctx, cache.PDFDownloadsKey(id)).Err(); err != nil {
			uc.logger.Warn("Failed to count PDF download of %s: %v", id, err)
		}
	}

	return data, summary, nil
}

func (uc *itineraryUseCase) AddPhoto(id, userID, caption string, file *multipart.FileHeader) (*entity.TravelerPhoto, error) {
	it, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	if it.CreatorID != userID {
		purchased, err := uc.repo.HasPurchased(userID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check purchase: %w", err)
		}
		if !purchased {
			return nil, fmt.Errorf("%w: only travelers who bought this itinerary can add photos", ErrForbidden)
		}
	}

	if file == nil {
		return nil, fmt.Errorf("%w: image file is required", ErrValidation)
	}
	if uc.storage == nil {
		return nil, fmt.Errorf("photo storage is not configured")
	}
	if file.Size > maxPhotoSize {
		return nil, fmt.Errorf("%w: image must be under 10MB", ErrValidation)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	thumb, err := MakeThumbnail(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	base := fmt.Sprintf("itineraries/%s/photos/%s", id, uuid.New().String())
	imageURL, err := uc.storage.UploadFile(base+strings.ToLower(filepath.Ext(file.Filename)), bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	thumbURL, err := uc.storage.UploadFile(base+"_thumb.jpg", bytes.NewReader(thumb), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	photo := &entity.TravelerPhoto{
		ItineraryID:  id,
		UserID:       userID,
		ImageURL:     imageURL,
		ThumbnailURL: thumbURL,
		Caption:      strings.TrimSpace(caption),
	}

	if err := uc.repo.CreatePhoto(photo); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	return photo, nil
}

func (uc *itineraryUseCase) ListPhotos(id string) ([]*entity.TravelerPhoto, error) {
	if _, err := uc.find(id); err != nil {
		return nil, err
	}
	return uc.repo.ListPhotos(id)
}

func (uc *itineraryUseCase) find(id string) (*entity.Itinerary, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (uc *itineraryUseCase) owned(id, userID string) (*entity.Itinerary, error) {
	it, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if it.CreatorID != userID {
		return nil, fmt.Errorf("%w: you can only modify your own itineraries", ErrForbidden)
	}
	return it, nil
}

func (uc *itineraryUseCase) hasFullAccess(it *entity.Itinerary, viewer Viewer) (bool, error) {
	if viewer.UserID == "" {
		return false, nil
	}
	if viewer.UserID == it.CreatorID || viewer.Role == "admin" {
		return true, nil
	}
	purchased, err := uc.repo.HasPurchased(viewer.UserID, it.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return purchased, nil
}

func (uc *itineraryUseCase) invalidateExplore() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := cache.InvalidateExplore(ctx, uc.redisClient); err != nil {
		uc.logger.Warn("Failed to invalidate explore cache: %v", err)
	}
}
