package service

import (
	"context"
	"fmt"
	"time"

	"sportshare-backend/internal/availability"
	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/repository"
)

type calendarService struct {
	equipmentRepo    repository.EquipmentRepository
	availabilityRepo repository.AvailabilityRepository
	bookingRepo      repository.BookingRepository
	windowDays       int
}

func NewCalendarService(
	equipmentRepo repository.EquipmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	bookingRepo repository.BookingRepository,
	windowDays int,
) CalendarService {
	if windowDays <= 0 {
		windowDays = availability.DefaultWindowDays
	}
	return &calendarService{
		equipmentRepo:    equipmentRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		windowDays:       windowDays,
	}
}

// GetCalendar is a pure read: repeated calls over the same window and
// ledger state return the same classification.
func (s *calendarService) GetCalendar(ctx context.Context, equipmentID int64, startDate, endDate string, debug bool) (*domain.Calendar, error) {
	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}

	window, err := s.resolveWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	intervals, err := s.availabilityRepo.ListForEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListForCalendar(ctx, equipmentID,
		window.Start.Format(availability.DateLayout), window.End.Format(availability.DateLayout))
	if err != nil {
		return nil, err
	}

	cal := availability.Resolve(window, intervals, bookings)
	cal.EquipmentID = equipmentID
	if debug {
		cal.DebugRows = debugRows(bookings)
	}
	return cal, nil
}

func (s *calendarService) resolveWindow(startDate, endDate string) (availability.Window, error) {
	var w availability.Window
	if startDate == "" {
		w.Start = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		start, err := availability.ParseDate(startDate)
		if err != nil {
			return w, domain.Validationf("start must be YYYY-MM-DD")
		}
		w.Start = start
	}
	if endDate == "" {
		w.End = w.Start.AddDate(0, 0, s.windowDays)
	} else {
		end, err := availability.ParseDate(endDate)
		if err != nil {
			return w, domain.Validationf("end must be YYYY-MM-DD")
		}
		w.End = end
	}
	if !w.Start.Before(w.End) {
		return w, domain.Validationf("start must be before end")
	}
	return w, nil
}

// debugRows lists the ledger rows the classification was computed from,
// one line per booking intersecting the window.
func debugRows(bookings []domain.Booking) []string {
	rows := make([]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, fmt.Sprintf("#id=%d %s [%s, %s)", b.ID, b.Status, b.StartDate, b.EndDate))
	}
	return rows
}
