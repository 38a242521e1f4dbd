package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/port"
)

// Join codes avoid 0/O and 1/I to survive being read aloud.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const joinCodeLength = 6

// CreateTripInput is the DTO for creating a trip.
type CreateTripInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	AdminPIN  string
}

// InviteMemberInput is the DTO for emailing a join invitation.
type InviteMemberInput struct {
	TripID uuid.UUID
	Email  string
	Name   string
}

// SetAIConfigInput is the DTO for overwriting a trip's AI provider settings.
type SetAIConfigInput struct {
	TripID   uuid.UUID
	Provider string
	Model    string
	APIKey   string
}

// TripService defines the trip lifecycle contract.
type TripService interface {
	Create(ctx context.Context, input *CreateTripInput) (*domain.Trip, error)
	GetByID(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error)
	JoinByCode(ctx context.Context, code string) (*domain.Trip, error)
	RedeemJoinToken(ctx context.Context, token string) (*domain.Trip, error)
	InviteMember(ctx context.Context, input *InviteMemberInput) error
	VerifyAdminPIN(ctx context.Context, tripID uuid.UUID, pin string) error
	SetAIConfig(ctx context.Context, input *SetAIConfigInput) error
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, tripID uuid.UUID) error
}

type tripService struct {
	tripRepo   port.TripRepository
	memberRepo port.MemberRepository
	email      port.EmailSender
	invite     *config.InviteConfig
	emailCfg   *config.EmailConfig
}

// NewTripService creates the trip lifecycle service.
func NewTripService(
	tripRepo port.TripRepository,
	memberRepo port.MemberRepository,
	email port.EmailSender,
	invite *config.InviteConfig,
	emailCfg *config.EmailConfig,
) TripService {
	return &tripService{
		tripRepo:   tripRepo,
		memberRepo: memberRepo,
		email:      email,
		invite:     invite,
		emailCfg:   emailCfg,
	}
}

func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating join code: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

func (s *tripService) Create(ctx context.Context, input *CreateTripInput) (*domain.Trip, error) {
	pinHash, err := bcrypt.GenerateFromPassword([]byte(input.AdminPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin PIN: %w", err)
	}

	// Retry on the off chance a random code collides with a live trip.
	for attempt := 0; attempt < 5; attempt++ {
		code, err := generateJoinCode()
		if err != nil {
			return nil, err
		}

		trip := &domain.Trip{
			ID:           uuid.New(),
			Code:         code,
			Name:         input.Name,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
			AdminPINHash: string(pinHash),
		}
		err = s.tripRepo.Create(ctx, trip)
		if errors.Is(err, domain.ErrDuplicateTripCode) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return trip, nil
	}
	return nil, fmt.Errorf("creating trip: %w", domain.ErrDuplicateTripCode)
}

func (s *tripService) GetByID(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	return s.tripRepo.GetByID(ctx, tripID)
}

func (s *tripService) JoinByCode(ctx context.Context, code string) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByCode(ctx, code)
	if errors.Is(err, domain.ErrTripNotFound) {
		return nil, domain.ErrInvalidJoinCode
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// joinClaims are the signed contents of an invitation token.
type joinClaims struct {
	TripID string `json:"trip_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (s *tripService) signJoinToken(tripID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := joinClaims{
		TripID: tripID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.invite.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.invite.Expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.invite.Secret))
}

func (s *tripService) RedeemJoinToken(ctx context.Context, tokenStr string) (*domain.Trip, error) {
	var claims joinClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.invite.Secret), nil
	}, jwt.WithIssuer(s.invite.Issuer))
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidJoinToken
	}

	tripID, err := uuid.Parse(claims.TripID)
	if err != nil {
		return nil, domain.ErrInvalidJoinToken
	}
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if errors.Is(err, domain.ErrTripNotFound) {
		return nil, domain.ErrInvalidJoinToken
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	trip, err := s.tripRepo.GetByID(ctx, input.TripID)
	if err != nil {
		return err
	}

	token, err := s.signJoinToken(trip.ID, input.Email)
	if err != nil {
		return fmt.Errorf("signing join token: %w", err)
	}

	joinURL := fmt.Sprintf("%s/join?token=%s", s.emailCfg.FrontendURL, url.QueryEscape(token))
	return s.email.SendTripInvite(ctx, input.Email, input.Name, trip.Name, joinURL)
}

func (s *tripService) VerifyAdminPIN(ctx context.Context, tripID uuid.UUID, pin string) error {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(trip.AdminPINHash), []byte(pin)) != nil {
		return domain.ErrInvalidAdminPIN
	}
	return nil
}

// SetAIConfig replaces the trip's AI settings wholesale. An empty provider
// reverts the trip to the server-level default.
func (s *tripService) SetAIConfig(ctx context.Context, input *SetAIConfigInput) error {
	return s.tripRepo.SetAIConfig(ctx, input.TripID, input.Provider, input.Model, input.APIKey)
}

func (s *tripService) Update(ctx context.Context, trip *domain.Trip) error {
	return s.tripRepo.Update(ctx, trip)
}

func (s *tripService) Delete(ctx context.Context, tripID uuid.UUID) error {
	return s.tripRepo.Delete(ctx, tripID)
}
