package service

import (
	"context"

	"sportshare-backend/internal/availability"
	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo    repository.EquipmentRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	availabilityRepo repository.AvailabilityRepository,
) EquipmentService {
	return &equipmentService{
		equipmentRepo:    equipmentRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, eq *domain.Equipment, imageURLs []string, intervals []domain.AvailabilityInterval) (*domain.Equipment, error) {
	if eq.Title == "" {
		return nil, domain.Validationf("title is required")
	}
	if eq.SportID == 0 {
		return nil, domain.Validationf("sport_id is required")
	}
	for _, iv := range intervals {
		start, err := availability.ParseDate(iv.StartDate)
		if err != nil {
			return nil, domain.Validationf("availability start_date must be YYYY-MM-DD")
		}
		end, err := availability.ParseDate(iv.EndDate)
		if err != nil {
			return nil, domain.Validationf("availability end_date must be YYYY-MM-DD")
		}
		if !start.Before(end) {
			return nil, domain.Validationf("availability start_date must be before end_date")
		}
	}

	exists, err := s.equipmentRepo.SportExists(ctx, eq.SportID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidSport
	}

	if err := s.equipmentRepo.Create(ctx, eq, imageURLs); err != nil {
		return nil, err
	}
	for i := range intervals {
		intervals[i].EquipmentID = eq.ID
		if err := s.availabilityRepo.Declare(ctx, &intervals[i]); err != nil {
			return nil, err
		}
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int64) (*domain.EquipmentDetail, error) {
	return s.equipmentRepo.GetDetail(ctx, id)
}

func (s *equipmentService) ListMyEquipment(ctx context.Context, ownerID int64) ([]domain.EquipmentSummary, error) {
	return s.equipmentRepo.ListByOwner(ctx, ownerID)
}

func (s *equipmentService) SearchEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.EquipmentSummary, error) {
	if (filter.StartDate == "") != (filter.EndDate == "") {
		return nil, domain.Validationf("start_date and end_date must be provided together")
	}
	if filter.StartDate != "" {
		start, err := availability.ParseDate(filter.StartDate)
		if err != nil {
			return nil, domain.Validationf("start_date must be YYYY-MM-DD")
		}
		end, err := availability.ParseDate(filter.EndDate)
		if err != nil {
			return nil, domain.Validationf("end_date must be YYYY-MM-DD")
		}
		if !start.Before(end) {
			return nil, domain.Validationf("start_date must be before end_date")
		}
	}
	return s.equipmentRepo.Search(ctx, filter)
}
