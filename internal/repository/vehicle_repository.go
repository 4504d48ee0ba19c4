package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workshop-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// BulkCreate inserts the whole batch inside one transaction. Any failed
// row aborts and rolls back the entire batch.
func (r *VehicleRepository) BulkCreate(ctx context.Context, vehicles []model.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&vehicles).Error
	})
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Preload("Owner").Order("model").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// GetWithDetails loads a vehicle together with its owner and service
// records for the detail page.
func (r *VehicleRepository) GetWithDetails(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("ServiceRecords").
		Where("id = ?", id).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	if plate == "" {
		return nil, nil
	}
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *VehicleRepository) UpdateImageURL(ctx context.Context, id uint, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

// DeleteCascade removes a vehicle and its service records in one
// transaction, dependents first.
func (r *VehicleRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&model.ServiceRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Vehicle{}).Error
	})
}
