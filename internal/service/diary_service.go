package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// DiaryService defines the travel log contract. Entries belong to the member
// who wrote them.
type DiaryService interface {
	UpsertEntry(ctx context.Context, entry *domain.DiaryEntry) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DiaryEntry, error)
	ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.DiaryEntry, error)
	DeleteEntry(ctx context.Context, tripID, entryID uuid.UUID) error
}

type diaryService struct {
	diaryRepo port.DiaryRepository
}

// NewDiaryService creates the diary service.
func NewDiaryService(diaryRepo port.DiaryRepository) DiaryService {
	return &diaryService{diaryRepo: diaryRepo}
}

func (s *diaryService) UpsertEntry(ctx context.Context, entry *domain.DiaryEntry) error {
	if entry.Content == "" && entry.ContentHe == "" {
		return fmt.Errorf("a diary entry needs content")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
		return s.diaryRepo.Upsert(ctx, entry)
	}

	// Updates keep the original author: the stored member_id wins over
	// whatever the client sent.
	existing, err := s.diaryRepo.GetByID(ctx, entry.TripID, entry.ID)
	if err == nil {
		entry.MemberID = existing.MemberID
		entry.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.diaryRepo.Upsert(ctx, entry)
}

func (s *diaryService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DiaryEntry, error) {
	return s.diaryRepo.ListByTrip(ctx, tripID)
}

func (s *diaryService) ListByDay(ctx context.Context, tripID uuid.UUID, dayIndex int) ([]domain.DiaryEntry, error) {
	return s.diaryRepo.ListByDay(ctx, tripID, dayIndex)
}

func (s *diaryService) DeleteEntry(ctx context.Context, tripID, entryID uuid.UUID) error {
	return s.diaryRepo.Delete(ctx, tripID, entryID)
}
