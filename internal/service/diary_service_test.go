package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wayfare/internal/domain"
	"wayfare/internal/service"
	"wayfare/mocks"
)

func TestDiaryService_UpsertEntry_AssignsIDForNewEntries(t *testing.T) {
	repo := new(mocks.MockDiaryRepo)
	svc := service.NewDiaryService(repo)
	tripID, memberID := uuid.New(), uuid.New()

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *domain.DiaryEntry) bool {
		return e.ID != uuid.Nil && e.MemberID == memberID
	})).Return(nil)

	err := svc.UpsertEntry(context.Background(), &domain.DiaryEntry{
		TripID:   tripID,
		MemberID: memberID,
		DayIndex: 2,
		Content:  "Gelato twice today.",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDiaryService_UpsertEntry_KeepsOriginalAuthor(t *testing.T) {
	repo := new(mocks.MockDiaryRepo)
	svc := service.NewDiaryService(repo)
	tripID, entryID := uuid.New(), uuid.New()
	author, editor := uuid.New(), uuid.New()
	created := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, tripID, entryID).Return(&domain.DiaryEntry{
		ID:        entryID,
		TripID:    tripID,
		MemberID:  author,
		Content:   "Original note",
		CreatedAt: created,
	}, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *domain.DiaryEntry) bool {
		return e.MemberID == author && e.CreatedAt.Equal(created) && e.Content == "Edited note"
	})).Return(nil)

	err := svc.UpsertEntry(context.Background(), &domain.DiaryEntry{
		ID:       entryID,
		TripID:   tripID,
		MemberID: editor,
		Content:  "Edited note",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDiaryService_UpsertEntry_RejectsEmptyContent(t *testing.T) {
	repo := new(mocks.MockDiaryRepo)
	svc := service.NewDiaryService(repo)

	err := svc.UpsertEntry(context.Background(), &domain.DiaryEntry{
		TripID:   uuid.New(),
		MemberID: uuid.New(),
	})
	assert.ErrorContains(t, err, "needs content")
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
