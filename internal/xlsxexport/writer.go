package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"wayfare/internal/domain"
)

const timeFormat = "2006-01-02 15:04"

var (
	dayColumns     = []string{"Day", "Date", "Location", "Notes"}
	flightColumns  = []string{"Day", "Airline", "Flight", "From", "To", "Departure", "Arrival", "Terminal", "Confirmation"}
	hotelColumns   = []string{"Days", "Name", "City", "Address", "Check-in", "Check-out", "Confirmation", "Phone"}
	drivingColumns = []string{"Day", "From", "To", "Distance (km)", "Duration (min)", "Notes"}
)

// Workbook builds the downloadable itinerary spreadsheet: one sheet each for
// days, flights, hotels, and driving legs.
type Workbook struct {
	file *excelize.File
}

// BuildItinerary assembles a workbook from the trip's itinerary data.
func BuildItinerary(days []domain.TripDay, flights []domain.Flight, hotels []domain.Hotel, driving []domain.DrivingSegment) (*Workbook, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Itinerary"); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	writeHeader(f, "Itinerary", dayColumns)
	for i, d := range days {
		row := i + 2
		setRow(f, "Itinerary", row,
			d.DayIndex+1,
			d.Date.Format("2006-01-02"),
			d.Location,
			d.Notes,
		)
	}

	if _, err := f.NewSheet("Flights"); err != nil {
		return nil, fmt.Errorf("adding Flights sheet: %w", err)
	}
	writeHeader(f, "Flights", flightColumns)
	for i, fl := range flights {
		row := i + 2
		setRow(f, "Flights", row,
			fl.DayIndex+1,
			fl.Airline,
			fl.FlightNumber,
			fmt.Sprintf("%s (%s)", fl.DepartureAirport, fl.DepartureAirportCode),
			fmt.Sprintf("%s (%s)", fl.ArrivalAirport, fl.ArrivalAirportCode),
			fl.DepartureTime.Format(timeFormat),
			fl.ArrivalTime.Format(timeFormat),
			fl.Terminal,
			fl.ConfirmationCode,
		)
	}

	if _, err := f.NewSheet("Hotels"); err != nil {
		return nil, fmt.Errorf("adding Hotels sheet: %w", err)
	}
	writeHeader(f, "Hotels", hotelColumns)
	for i, h := range hotels {
		row := i + 2
		setRow(f, "Hotels", row,
			fmt.Sprintf("%d–%d", h.DayIndexStart+1, h.DayIndexEnd+1),
			h.Name,
			h.City,
			h.Address,
			h.CheckIn.Format(timeFormat),
			h.CheckOut.Format(timeFormat),
			h.ConfirmationCode,
			h.Phone,
		)
	}

	if _, err := f.NewSheet("Driving"); err != nil {
		return nil, fmt.Errorf("adding Driving sheet: %w", err)
	}
	writeHeader(f, "Driving", drivingColumns)
	for i, d := range driving {
		row := i + 2
		var distance, duration interface{}
		if d.DistanceKm != nil {
			distance = *d.DistanceKm
		}
		if d.DurationMinutes != nil {
			duration = *d.DurationMinutes
		}
		setRow(f, "Driving", row,
			d.DayIndex+1,
			d.FromPlace,
			d.ToPlace,
			distance,
			duration,
			d.Notes,
		)
	}

	return &Workbook{file: f}, nil
}

// WriteTo streams the workbook as an XLSX file.
func (w *Workbook) WriteTo(out io.Writer) error {
	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return w.file.Close()
}

func writeHeader(f *excelize.File, sheet string, columns []string) {
	setRow(f, sheet, 1, toAny(columns)...)
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func toAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
