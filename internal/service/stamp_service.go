package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// PassportView is one member's passport page: every stamp on the trip plus
// which of them this member has earned.
type PassportView struct {
	Stamps []domain.PassportStamp `json:"stamps"`
	Earned []domain.EarnedStamp   `json:"earned"`
}

// StampService defines the passport stamp contract.
type StampService interface {
	Upsert(ctx context.Context, stamp *domain.PassportStamp) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PassportStamp, error)
	Delete(ctx context.Context, tripID, stampID uuid.UUID) error

	Earn(ctx context.Context, tripID, stampID, memberID uuid.UUID) error
	Passport(ctx context.Context, tripID, memberID uuid.UUID) (*PassportView, error)
	ListEarnedByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.EarnedStamp, error)
}

type stampService struct {
	stamps port.StampRepository
}

// NewStampService creates the passport stamp service.
func NewStampService(stampRepo port.StampRepository) StampService {
	return &stampService{stamps: stampRepo}
}

func (s *stampService) Upsert(ctx context.Context, stamp *domain.PassportStamp) error {
	if stamp.ID == uuid.Nil {
		stamp.ID = uuid.New()
	}
	return s.stamps.Upsert(ctx, stamp)
}

func (s *stampService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PassportStamp, error) {
	return s.stamps.ListByTrip(ctx, tripID)
}

func (s *stampService) Delete(ctx context.Context, tripID, stampID uuid.UUID) error {
	return s.stamps.Delete(ctx, tripID, stampID)
}

// Earn records a manual stamp earn. Idempotent: earning twice keeps the
// original earned-at time.
func (s *stampService) Earn(ctx context.Context, tripID, stampID, memberID uuid.UUID) error {
	if _, err := s.stamps.GetByID(ctx, tripID, stampID); err != nil {
		return err
	}
	return s.stamps.UpsertEarned(ctx, &domain.EarnedStamp{
		ID:       domain.EarnedStampID(memberID, stampID),
		TripID:   tripID,
		StampID:  stampID,
		MemberID: memberID,
		EarnedAt: time.Now().UTC(),
	})
}

func (s *stampService) Passport(ctx context.Context, tripID, memberID uuid.UUID) (*PassportView, error) {
	stamps, err := s.stamps.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	earned, err := s.stamps.ListEarnedByMember(ctx, tripID, memberID)
	if err != nil {
		return nil, err
	}
	return &PassportView{Stamps: stamps, Earned: earned}, nil
}

func (s *stampService) ListEarnedByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.EarnedStamp, error) {
	return s.stamps.ListEarnedByTrip(ctx, tripID)
}
