package service

import (
	"context"
	"errors"
	"fmt"

	"sportshare-backend/internal/availability"
	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/logger"
	"sportshare-backend/internal/repository"
)

type bookingService struct {
	bookingRepo      repository.BookingRepository
	equipmentRepo    repository.EquipmentRepository
	availabilityRepo repository.AvailabilityRepository
	userRepo         repository.UserRepository
	notificationSvc  NotificationService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	userRepo repository.UserRepository,
	notificationSvc NotificationService,
) BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		equipmentRepo:    equipmentRepo,
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		notificationSvc:  notificationSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID, equipmentID int64, startDate, endDate string, depositAmount *float64) (*domain.Booking, error) {
	if equipmentID == 0 {
		return nil, domain.Validationf("equipment_id is required")
	}
	start, err := availability.ParseDate(startDate)
	if err != nil {
		return nil, domain.Validationf("start_date must be YYYY-MM-DD")
	}
	end, err := availability.ParseDate(endDate)
	if err != nil {
		return nil, domain.Validationf("end_date must be YYYY-MM-DD")
	}
	if !start.Before(end) {
		return nil, domain.Validationf("start_date must be before end_date")
	}

	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		if errors.Is(err, domain.ErrEquipmentNotFound) {
			return nil, domain.ErrInvalidEquipment
		}
		return nil, err
	}

	covered, err := s.availabilityRepo.Covers(ctx, equipmentID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if !covered {
		return nil, domain.ErrOutsideAvailability
	}

	// A pending booking is a soft hold; the authoritative overlap check
	// runs again under a row lock at approval time.
	overlaps, err := s.bookingRepo.OverlapsBlocking(ctx, equipmentID, startDate, endDate, 0)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.ErrBookingConflict
	}

	booking := &domain.Booking{
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		StartDate:     startDate,
		EndDate:       endDate,
		DepositAmount: depositAmount,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, booking)
	return booking, nil
}

func (s *bookingService) SetBookingStatus(ctx context.Context, ownerID, bookingID int64, status string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepo.GetByID(ctx, booking.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}

	switch domain.BookingStatus(status) {
	case domain.BookingStatusApproved:
		booking, err = s.bookingRepo.ApproveExclusive(ctx, bookingID)
		if err != nil {
			return nil, err
		}
	case domain.BookingStatusRejected:
		if err := s.bookingRepo.SetStatus(ctx, bookingID, domain.BookingStatusRejected); err != nil {
			return nil, err
		}
		booking.Status = domain.BookingStatusRejected
	default:
		return nil, domain.ErrInvalidStatus
	}

	s.notifyRenter(ctx, booking, eq.Title)
	return booking, nil
}

func (s *bookingService) ListOwnerRequests(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error) {
	return s.bookingRepo.ListPendingByOwner(ctx, ownerID)
}

// notifyOwner is best-effort: a lost notification never fails the booking.
func (s *bookingService) notifyOwner(ctx context.Context, b *domain.Booking) {
	eq, err := s.equipmentRepo.GetByID(ctx, b.EquipmentID)
	if err != nil {
		logger.Warn("owner notification skipped", "booking_id", b.ID, "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, b.RenterID)
	renterName := ""
	if err == nil {
		renterName = renter.FullName
	}
	err = s.notificationSvc.Notify(ctx, eq.OwnerID, "booking_requested",
		"New booking request",
		fmt.Sprintf("%s requested %s from %s to %s", renterName, eq.Title, b.StartDate, b.EndDate),
		bookingData(b, eq.Title))
	if err != nil {
		logger.Warn("owner notification failed", "booking_id", b.ID, "error", err)
	}
}

func (s *bookingService) notifyRenter(ctx context.Context, b *domain.Booking, equipmentTitle string) {
	title := "Booking approved"
	eventType := "booking_approved"
	if b.Status == domain.BookingStatusRejected {
		title = "Booking rejected"
		eventType = "booking_rejected"
	}
	err := s.notificationSvc.Notify(ctx, b.RenterID, eventType, title,
		fmt.Sprintf("Your booking for %s (%s to %s) was %s", equipmentTitle, b.StartDate, b.EndDate, b.Status),
		bookingData(b, equipmentTitle))
	if err != nil {
		logger.Warn("renter notification failed", "booking_id", b.ID, "error", err)
	}
}

func bookingData(b *domain.Booking, equipmentTitle string) map[string]string {
	return map[string]string{
		"booking_id":      fmt.Sprintf("%d", b.ID),
		"equipment_id":    fmt.Sprintf("%d", b.EquipmentID),
		"equipment_title": equipmentTitle,
		"start_date":      b.StartDate,
		"end_date":        b.EndDate,
		"status":          string(b.Status),
	}
}
