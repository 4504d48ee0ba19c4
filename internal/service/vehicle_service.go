package service

import (
	"context"
	"fmt"
	"strings"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
	"workshop-service/internal/utils"
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	clientRepo  *repository.ClientRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, clientRepo *repository.ClientRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
	}
}

type VehicleInput struct {
	ClientID     uint
	Model        string
	Plate        string
	Color        string
	Year         int
	Observations string
}

// Create validates the owning client, runs the plate uniqueness guard
// and persists the vehicle. A duplicate plate comes back as a
// *PlateConflictError so the form can be re-presented.
func (s *VehicleService) Create(ctx context.Context, input VehicleInput) (*model.Vehicle, error) {
	vehicle, err := s.vehicleFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicleRepo.GetByPlate(ctx, vehicle.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &PlateConflictError{Plate: vehicle.Plate}
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update applies the same guard as Create, except that a vehicle
// keeping its own plate does not conflict with itself.
func (s *VehicleService) Update(ctx context.Context, id uint, input VehicleInput) (*model.Vehicle, error) {
	current, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	updated, err := s.vehicleFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicleRepo.GetByPlate(ctx, updated.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, &PlateConflictError{Plate: updated.Plate}
	}

	updated.ID = current.ID
	updated.ImageURL = current.ImageURL

	if err := s.vehicleRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// GetDetails loads the vehicle with its owner and service records.
func (s *VehicleService) GetDetails(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// AttachPhoto records the public URL of an uploaded photo.
func (s *VehicleService) AttachPhoto(ctx context.Context, id uint, imageURL string) error {
	return s.vehicleRepo.UpdateImageURL(ctx, id, imageURL)
}

// Delete removes the vehicle and cascades over its service records.
func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	existing, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.vehicleRepo.DeleteCascade(ctx, id)
}

func (s *VehicleService) vehicleFromInput(ctx context.Context, input VehicleInput) (*model.Vehicle, error) {
	plate := utils.NormalizePlate(input.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	vehicleModel := strings.TrimSpace(input.Model)
	if vehicleModel == "" {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: unknown client id %d", ErrInvalidInput, input.ClientID)
	}

	vehicle := &model.Vehicle{
		ClientID: input.ClientID,
		Model:    vehicleModel,
		Plate:    plate,
		Color:    strings.TrimSpace(input.Color),
		Year:     input.Year,
	}
	if obs := strings.TrimSpace(input.Observations); obs != "" {
		vehicle.Observations = &obs
	}
	return vehicle, nil
}
