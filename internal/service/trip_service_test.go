package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/service"
	"wayfare/mocks"
)

func newTripService(tripRepo *mocks.MockTripRepo, memberRepo *mocks.MockMemberRepo, email *mocks.MockEmailSender) service.TripService {
	invite := &config.InviteConfig{
		Secret: "test-signing-secret",
		Expiry: 72 * time.Hour,
		Issuer: "wayfare",
	}
	emailCfg := &config.EmailConfig{
		FromAddress: "trips@example.com",
		FrontendURL: "https://app.example.com",
	}
	return service.NewTripService(tripRepo, memberRepo, email, invite, emailCfg)
}

func TestTripService_Create_HashesPINAndGeneratesCode(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	var created *domain.Trip
	tripRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Trip")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Trip) }).
		Return(nil)

	trip, err := svc.Create(context.Background(), &service.CreateTripInput{
		Name:      "Greece 2026",
		StartDate: time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		AdminPIN:  "4321",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Len(t, trip.Code, 6)
	// Ambiguous characters never appear in join codes.
	assert.NotContains(t, trip.Code, "0")
	assert.NotContains(t, trip.Code, "O")
	assert.NotContains(t, trip.Code, "1")
	assert.NotContains(t, trip.Code, "I")
	// The PIN is stored as a bcrypt hash, never in the clear.
	assert.NotEqual(t, "4321", trip.AdminPINHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(trip.AdminPINHash), []byte("4321")))
}

func TestTripService_Create_RetriesOnCodeCollision(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	tripRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Trip")).
		Return(domain.ErrDuplicateTripCode).Once()
	tripRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Trip")).
		Return(nil).Once()

	trip, err := svc.Create(context.Background(), &service.CreateTripInput{
		Name:     "Retry Trip",
		AdminPIN: "0000",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, trip.Code)
	tripRepo.AssertExpectations(t)
}

func TestTripService_JoinByCode_UnknownCode(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	tripRepo.On("GetByCode", mock.Anything, "ZZZZZZ").Return(nil, domain.ErrTripNotFound)

	_, err := svc.JoinByCode(context.Background(), "ZZZZZZ")

	assert.ErrorIs(t, err, domain.ErrInvalidJoinCode)
}

func TestTripService_InviteAndRedeemRoundtrip(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	email := new(mocks.MockEmailSender)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), email)

	trip := &domain.Trip{ID: uuid.New(), Name: "Greece 2026"}
	tripRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)

	var joinURL string
	email.On("SendTripInvite", mock.Anything, "dana@example.com", "Dana", "Greece 2026", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { joinURL = args.String(4) }).
		Return(nil)

	err := svc.InviteMember(context.Background(), &service.InviteMemberInput{
		TripID: trip.ID,
		Email:  "dana@example.com",
		Name:   "Dana",
	})
	require.NoError(t, err)
	require.Contains(t, joinURL, "https://app.example.com/join?token=")

	token := joinURL[len("https://app.example.com/join?token="):]
	redeemed, err := svc.RedeemJoinToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, redeemed.ID)
}

func TestTripService_RedeemJoinToken_Garbage(t *testing.T) {
	svc := newTripService(new(mocks.MockTripRepo), new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	_, err := svc.RedeemJoinToken(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, domain.ErrInvalidJoinToken)
}

func TestTripService_VerifyAdminPIN(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.DefaultCost)
	require.NoError(t, err)
	trip := &domain.Trip{ID: uuid.New(), AdminPINHash: string(hash)}
	tripRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)

	assert.NoError(t, svc.VerifyAdminPIN(context.Background(), trip.ID, "4321"))
	assert.ErrorIs(t, svc.VerifyAdminPIN(context.Background(), trip.ID, "9999"), domain.ErrInvalidAdminPIN)
}

func TestTripService_SetAIConfig(t *testing.T) {
	tripRepo := new(mocks.MockTripRepo)
	svc := newTripService(tripRepo, new(mocks.MockMemberRepo), new(mocks.MockEmailSender))

	tripID := uuid.New()
	tripRepo.On("SetAIConfig", mock.Anything, tripID, "claude", "claude-haiku-4-5-20251001", "sk-key").Return(nil)

	err := svc.SetAIConfig(context.Background(), &service.SetAIConfigInput{
		TripID:   tripID,
		Provider: "claude",
		Model:    "claude-haiku-4-5-20251001",
		APIKey:   "sk-key",
	})

	assert.NoError(t, err)
	tripRepo.AssertExpectations(t)
}
