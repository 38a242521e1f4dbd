package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrMemberNotFound       = errors.New("family member not found")
	ErrInvalidJoinCode      = errors.New("invalid trip code")
	ErrInvalidJoinToken     = errors.New("invalid or expired join token")
	ErrInvalidAdminPIN      = errors.New("invalid admin PIN")
	ErrDuplicateTripCode    = errors.New("trip code already exists")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrAnalyzeInFlight      = errors.New("an AI request is already in flight for this trip")
)
