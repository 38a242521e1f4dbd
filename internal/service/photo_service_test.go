package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wayfare/internal/config"
	"wayfare/internal/domain"
	"wayfare/internal/port"
	"wayfare/internal/service"
	"wayfare/mocks"
)

func newPhotoService(photos *mocks.MockPhotoRepo, storage *mocks.MockObjectStorage) service.PhotoService {
	cfg := &config.S3Config{
		Bucket:        "wayfare-photos",
		MaxFileSizeMB: 10,
		PresignExpiry: 900,
	}
	return service.NewPhotoService(photos, storage, cfg)
}

func TestPhotoService_Upload(t *testing.T) {
	photos := new(mocks.MockPhotoRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newPhotoService(photos, storage)

	tripID := uuid.New()
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasPrefix(in.Key, "trips/"+tripID.String()+"/photos/") &&
			in.ContentType == "image/jpeg"
	})).Return(nil)
	photos.On("Create", mock.Anything, mock.AnythingOfType("*domain.PhotoEntry")).Return(nil)

	photo, err := svc.Upload(context.Background(), &service.UploadPhotoInput{
		TripID:      tripID,
		MemberID:    uuid.New(),
		DayIndex:    2,
		Caption:     "Sunset at the harbor",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, photo.ID)
	// A missing taken-at timestamp defaults to upload time.
	assert.False(t, photo.TakenAt.IsZero())
	storage.AssertExpectations(t)
	photos.AssertExpectations(t)
}

func TestPhotoService_Upload_RejectsUnsupportedType(t *testing.T) {
	photos := new(mocks.MockPhotoRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newPhotoService(photos, storage)

	_, err := svc.Upload(context.Background(), &service.UploadPhotoInput{
		TripID:      uuid.New(),
		ContentType: "application/pdf",
		Size:        100,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestPhotoService_Upload_RejectsOversizedFile(t *testing.T) {
	photos := new(mocks.MockPhotoRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newPhotoService(photos, storage)

	_, err := svc.Upload(context.Background(), &service.UploadPhotoInput{
		TripID:      uuid.New(),
		ContentType: "image/png",
		Size:        11 * 1024 * 1024,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestPhotoService_Upload_CleansUpObjectOnInsertFailure(t *testing.T) {
	photos := new(mocks.MockPhotoRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newPhotoService(photos, storage)

	storage.On("Upload", mock.Anything, mock.Anything).Return(nil)
	photos.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	storage.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := svc.Upload(context.Background(), &service.UploadPhotoInput{
		TripID:      uuid.New(),
		ContentType: "image/webp",
		Size:        512,
		Body:        strings.NewReader("webp-bytes"),
	})

	assert.Error(t, err)
	storage.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("string"))
}

func TestPhotoService_ListByTrip_PresignsEachPhoto(t *testing.T) {
	photos := new(mocks.MockPhotoRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newPhotoService(photos, storage)

	tripID := uuid.New()
	photos.On("ListByTrip", mock.Anything, tripID).Return([]domain.PhotoEntry{
		{ID: uuid.New(), TripID: tripID, ObjectKey: "trips/x/photos/a"},
		{ID: uuid.New(), TripID: tripID, ObjectKey: "trips/x/photos/b"},
	}, nil)
	storage.On("PresignGet", mock.Anything, "trips/x/photos/a", 900*time.Second).Return("https://cdn/a", nil)
	storage.On("PresignGet", mock.Anything, "trips/x/photos/b", 900*time.Second).Return("https://cdn/b", nil)

	out, err := svc.ListByTrip(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "https://cdn/a", out[0].URL)
	assert.Equal(t, "https://cdn/b", out[1].URL)
}
