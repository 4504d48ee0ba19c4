package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-service/internal/model"
)

func newRecordService(t *testing.T) (*ServiceRecordService, testRepos) {
	repos := newTestRepos(newTestDB(t))
	return NewServiceRecordService(repos.records, repos.vehicles), repos
}

func TestServiceRecordCreate(t *testing.T) {
	svc, repos := newRecordService(t)
	ctx := context.Background()

	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "AAA111")

	record, err := svc.Create(ctx, ServiceRecordInput{
		VehicleID:   vehicle.ID,
		Description: "oil change",
		Status:      "IN_PROGRESS",
		Price:       89.9,
		Notes:       "customer waiting",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ServiceStatusInProgress, record.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), record.StartDate)
	require.NotNil(t, record.Notes)
	assert.Equal(t, "customer waiting", *record.Notes)
}

func TestServiceRecordCreateRejectsUnknownVehicle(t *testing.T) {
	svc, _ := newRecordService(t)

	_, err := svc.Create(context.Background(), ServiceRecordInput{
		VehicleID: 404, Description: "oil change", Status: "PENDING",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceRecordCreateRejectsBadStatus(t *testing.T) {
	svc, repos := newRecordService(t)
	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "AAA111")

	_, err := svc.Create(context.Background(), ServiceRecordInput{
		VehicleID: vehicle.ID, Description: "oil change", Status: "WAITING",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceRecordCreateRejectsNegativePrice(t *testing.T) {
	svc, repos := newRecordService(t)
	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "AAA111")

	_, err := svc.Create(context.Background(), ServiceRecordInput{
		VehicleID: vehicle.ID, Description: "oil change", Status: "PENDING", Price: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceRecordUpdateKeepsStartDateAndVehicle(t *testing.T) {
	svc, repos := newRecordService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "AAA111")

	record := &model.ServiceRecord{
		VehicleID:   vehicle.ID,
		Description: "brakes",
		StartDate:   "2026-01-15",
		Status:      model.ServiceStatusPending,
		Price:       120,
	}
	require.NoError(t, repos.db.Create(record).Error)

	updated, err := svc.Update(ctx, record.ID, ServiceRecordInput{
		VehicleID:   999, // ignored; ownership is immutable
		Description: "brakes and pads",
		Status:      "DONE",
		Price:       150,
	})
	require.NoError(t, err)

	assert.Equal(t, vehicle.ID, updated.VehicleID)
	assert.Equal(t, "2026-01-15", updated.StartDate)
	assert.Equal(t, model.ServiceStatusDone, updated.Status)
}

func TestServiceRecordDeleteReturnsVehicleID(t *testing.T) {
	svc, repos := newRecordService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "AAA111")

	record := &model.ServiceRecord{
		VehicleID:   vehicle.ID,
		Description: "brakes",
		StartDate:   "2026-01-15",
		Status:      model.ServiceStatusPending,
	}
	require.NoError(t, repos.db.Create(record).Error)

	vehicleID, err := svc.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, vehicleID)

	_, err = svc.Get(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
