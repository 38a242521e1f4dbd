package service

import (
	"context"

	"github.com/google/uuid"

	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// CreateMemberInput is the DTO for adding a family member to a trip.
type CreateMemberInput struct {
	TripID     uuid.UUID
	Name       string
	NameHe     string
	Emoji      string
	DeviceType domain.DeviceType
	Email      string
	IsVirtual  bool
}

// MemberService defines the family member management contract.
type MemberService interface {
	Create(ctx context.Context, input *CreateMemberInput) (*domain.FamilyMember, error)
	GetByID(ctx context.Context, tripID, memberID uuid.UUID) (*domain.FamilyMember, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FamilyMember, error)
	Update(ctx context.Context, member *domain.FamilyMember) error
	Delete(ctx context.Context, tripID, memberID uuid.UUID) error
}

type memberService struct {
	memberRepo port.MemberRepository
}

// NewMemberService creates the family member service.
func NewMemberService(memberRepo port.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Create(ctx context.Context, input *CreateMemberInput) (*domain.FamilyMember, error) {
	member := &domain.FamilyMember{
		ID:         uuid.New(),
		TripID:     input.TripID,
		Name:       input.Name,
		NameHe:     input.NameHe,
		Emoji:      input.Emoji,
		DeviceType: input.DeviceType,
		Email:      input.Email,
		IsVirtual:  input.IsVirtual,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) GetByID(ctx context.Context, tripID, memberID uuid.UUID) (*domain.FamilyMember, error) {
	return s.memberRepo.GetByID(ctx, tripID, memberID)
}

func (s *memberService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FamilyMember, error) {
	return s.memberRepo.ListByTrip(ctx, tripID)
}

func (s *memberService) Update(ctx context.Context, member *domain.FamilyMember) error {
	return s.memberRepo.Update(ctx, member)
}

func (s *memberService) Delete(ctx context.Context, tripID, memberID uuid.UUID) error {
	return s.memberRepo.Delete(ctx, tripID, memberID)
}
