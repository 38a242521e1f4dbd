package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"wayfare/internal/port"
	"wayfare/internal/xlsxexport"
)

// ExportService defines the itinerary spreadsheet export contract.
type ExportService interface {
	WriteItineraryXLSX(ctx context.Context, tripID uuid.UUID, out io.Writer) error
}

type exportService struct {
	dayRepo     port.DayRepository
	flightRepo  port.FlightRepository
	hotelRepo   port.HotelRepository
	drivingRepo port.DrivingRepository
}

// NewExportService creates the export service.
func NewExportService(
	dayRepo port.DayRepository,
	flightRepo port.FlightRepository,
	hotelRepo port.HotelRepository,
	drivingRepo port.DrivingRepository,
) ExportService {
	return &exportService{
		dayRepo:     dayRepo,
		flightRepo:  flightRepo,
		hotelRepo:   hotelRepo,
		drivingRepo: drivingRepo,
	}
}

func (s *exportService) WriteItineraryXLSX(ctx context.Context, tripID uuid.UUID, out io.Writer) error {
	days, err := s.dayRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return err
	}
	flights, err := s.flightRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return err
	}
	hotels, err := s.hotelRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return err
	}
	driving, err := s.drivingRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return err
	}

	wb, err := xlsxexport.BuildItinerary(days, flights, hotels, driving)
	if err != nil {
		return err
	}
	return wb.WriteTo(out)
}
