package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// UploadPhotoInput is the DTO for adding a photo to the trip feed.
type UploadPhotoInput struct {
	TripID      uuid.UUID
	MemberID    uuid.UUID
	DayIndex    int
	Caption     string
	CaptionHe   string
	TakenAt     time.Time
	ContentType string
	Size        int64
	Body        io.Reader
}

// PhotoWithURL is a photo entry with a presigned download URL attached.
type PhotoWithURL struct {
	domain.PhotoEntry
	URL string `json:"url"`
}

// PhotoService defines the shared photo feed contract.
type PhotoService interface {
	Upload(ctx context.Context, input *UploadPhotoInput) (*domain.PhotoEntry, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]PhotoWithURL, error)
	ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]PhotoWithURL, error)
	Delete(ctx context.Context, tripID, photoID uuid.UUID) error
}

type photoService struct {
	photos  port.PhotoRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewPhotoService creates the photo feed service.
func NewPhotoService(photoRepo port.PhotoRepository, storage port.ObjectStorage, cfg *config.S3Config) PhotoService {
	return &photoService{photos: photoRepo, storage: storage, cfg: cfg}
}

func (s *photoService) Upload(ctx context.Context, input *UploadPhotoInput) (*domain.PhotoEntry, error) {
	if !domain.AllowedImageTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedImageType
	}
	if input.Size > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	photo := &domain.PhotoEntry{
		ID:        uuid.New(),
		TripID:    input.TripID,
		DayIndex:  input.DayIndex,
		MemberID:  input.MemberID,
		Caption:   input.Caption,
		CaptionHe: input.CaptionHe,
		TakenAt:   input.TakenAt,
	}
	if photo.TakenAt.IsZero() {
		photo.TakenAt = time.Now().UTC()
	}
	photo.ObjectKey = fmt.Sprintf("trips/%s/photos/%s", input.TripID, photo.ID)

	err := s.storage.Upload(ctx, port.UploadInput{
		Key:         photo.ObjectKey,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading photo: %w", err)
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		// The record is the source of truth; orphaned objects get no row.
		_ = s.storage.Delete(context.WithoutCancel(ctx), photo.ObjectKey)
		return nil, err
	}
	return photo, nil
}

func (s *photoService) presignAll(ctx context.Context, photos []domain.PhotoEntry) ([]PhotoWithURL, error) {
	expiry := time.Duration(s.cfg.PresignExpiry) * time.Second
	out := make([]PhotoWithURL, 0, len(photos))
	for _, p := range photos {
		url, err := s.storage.PresignGet(ctx, p.ObjectKey, expiry)
		if err != nil {
			return nil, fmt.Errorf("presigning %s: %w", p.ObjectKey, err)
		}
		out = append(out, PhotoWithURL{PhotoEntry: p, URL: url})
	}
	return out, nil
}

func (s *photoService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]PhotoWithURL, error) {
	photos, err := s.photos.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.presignAll(ctx, photos)
}

func (s *photoService) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]PhotoWithURL, error) {
	photos, err := s.photos.ListByDay(ctx, tripID, dayIndex)
	if err != nil {
		return nil, err
	}
	return s.presignAll(ctx, photos)
}

func (s *photoService) Delete(ctx context.Context, tripID, photoID uuid.UUID) error {
	photo, err := s.photos.GetByID(ctx, tripID, photoID)
	if err != nil {
		return err
	}
	if err := s.photos.Delete(ctx, tripID, photoID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, photo.ObjectKey); err != nil {
		return fmt.Errorf("deleting photo object: %w", err)
	}
	return nil
}
