package model

import "fmt"

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "PENDING"
	ServiceStatusInProgress ServiceStatus = "IN_PROGRESS"
	ServiceStatusDone       ServiceStatus = "DONE"
	ServiceStatusCanceled   ServiceStatus = "CANCELED"
)

// ServiceStatuses lists every valid status, in the order forms present them.
var ServiceStatuses = []ServiceStatus{
	ServiceStatusPending,
	ServiceStatusInProgress,
	ServiceStatusDone,
	ServiceStatusCanceled,
}

// ParseServiceStatus maps a submitted string onto the closed status set.
// Anything outside the four defined values is a validation error.
func ParseServiceStatus(raw string) (ServiceStatus, error) {
	switch ServiceStatus(raw) {
	case ServiceStatusPending, ServiceStatusInProgress, ServiceStatusDone, ServiceStatusCanceled:
		return ServiceStatus(raw), nil
	}
	return "", fmt.Errorf("unknown service status %q", raw)
}

// ServiceRecord is one unit of work performed on a Vehicle.
type ServiceRecord struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID   uint          `gorm:"not null;index" json:"vehicle_id"`
	Description string        `gorm:"type:varchar(500);not null" json:"description"`
	StartDate   string        `gorm:"type:varchar(20);not null" json:"start_date"`
	Status      ServiceStatus `gorm:"type:varchar(50);not null" json:"status"`
	Price       float64       `gorm:"default:0" json:"price"`
	Notes       *string       `gorm:"type:text" json:"notes"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (ServiceRecord) TableName() string {
	return "services"
}
