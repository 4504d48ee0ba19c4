package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workshop-service/internal/model"
)

type ServiceRecordRepository struct {
	db *gorm.DB
}

func NewServiceRecordRepository(db *gorm.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: db}
}

func (r *ServiceRecordRepository) Create(ctx context.Context, record *model.ServiceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ServiceRecordRepository) GetByID(ctx context.Context, id uint) (*model.ServiceRecord, error) {
	var record model.ServiceRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ServiceRecordRepository) Update(ctx context.Context, record *model.ServiceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *ServiceRecordRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceRecord{}).Error
}
