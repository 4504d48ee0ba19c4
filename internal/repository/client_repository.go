package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workshop-service/internal/model"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Order("name").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// ListIDs returns the id of every client in one read. The bulk import
// fetches this set once up front instead of probing per row.
func (r *ClientRepository) ListIDs(ctx context.Context) (map[uint]struct{}, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Client{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) GetWithVehicles(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Preload("Vehicles").Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// DeleteCascade removes a client together with its vehicles and their
// service records in one transaction, dependents first.
func (r *ClientRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicleIDs := tx.Model(&model.Vehicle{}).Select("id").Where("client_id = ?", id)
		if err := tx.Where("vehicle_id IN (?)", vehicleIDs).Delete(&model.ServiceRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.Vehicle{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Client{}).Error
	})
}
