package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
)

type ServiceRecordService struct {
	recordRepo  *repository.ServiceRecordRepository
	vehicleRepo *repository.VehicleRepository
}

func NewServiceRecordService(recordRepo *repository.ServiceRecordRepository, vehicleRepo *repository.VehicleRepository) *ServiceRecordService {
	return &ServiceRecordService{
		recordRepo:  recordRepo,
		vehicleRepo: vehicleRepo,
	}
}

type ServiceRecordInput struct {
	VehicleID   uint
	Description string
	Status      string
	Price       float64
	Notes       string
}

func (s *ServiceRecordService) Create(ctx context.Context, input ServiceRecordInput) (*model.ServiceRecord, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: unknown vehicle id %d", ErrInvalidInput, input.VehicleID)
	}

	record, err := recordFromInput(input)
	if err != nil {
		return nil, err
	}
	record.StartDate = time.Now().Format("2006-01-02")

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ServiceRecordService) Get(ctx context.Context, id uint) (*model.ServiceRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// Update replaces the mutable fields; the start date set at creation is
// kept as is.
func (s *ServiceRecordService) Update(ctx context.Context, id uint, input ServiceRecordInput) (*model.ServiceRecord, error) {
	current, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	updated, err := recordFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.VehicleID = current.VehicleID
	updated.StartDate = current.StartDate

	if err := s.recordRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record and returns the owning vehicle id so the
// caller can redirect back to the vehicle page.
func (s *ServiceRecordService) Delete(ctx context.Context, id uint) (uint, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, ErrNotFound
	}
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return 0, err
	}
	return record.VehicleID, nil
}

func recordFromInput(input ServiceRecordInput) (*model.ServiceRecord, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	status, err := model.ParseServiceStatus(input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	record := &model.ServiceRecord{
		VehicleID:   input.VehicleID,
		Description: description,
		Status:      status,
		Price:       input.Price,
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		record.Notes = &notes
	}
	return record, nil
}
