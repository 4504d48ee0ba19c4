package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleService(t *testing.T) (*VehicleService, testRepos) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	return NewVehicleService(repos.vehicles, repos.clients), repos
}

func TestVehicleCreateNormalizesPlate(t *testing.T) {
	svc, repos := newVehicleService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")

	vehicle, err := svc.Create(ctx, VehicleInput{
		ClientID: client.ID,
		Model:    "Gol",
		Plate:    " abc123 ",
		Color:    "blue",
		Year:     2015,
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", vehicle.Plate)
}

func TestVehicleCreateRejectsDuplicatePlate(t *testing.T) {
	svc, repos := newVehicleService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")

	first, err := svc.Create(ctx, VehicleInput{
		ClientID: client.ID, Model: "Gol", Plate: " abc123 ", Color: "blue", Year: 2015,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, VehicleInput{
		ClientID: client.ID, Model: "Uno", Plate: "ABC123", Color: "red", Year: 2012,
	})
	require.Error(t, err)

	var conflict *PlateConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "ABC123", conflict.Plate)
	assert.ErrorIs(t, err, ErrConflict)

	// the first vehicle is untouched
	kept, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", kept.Plate)
}

func TestVehicleUpdateKeepsOwnPlate(t *testing.T) {
	svc, repos := newVehicleService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")
	vehicle := seedVehicle(t, repos.db, client.ID, "XYZ789")

	updated, err := svc.Update(ctx, vehicle.ID, VehicleInput{
		ClientID: client.ID,
		Model:    "Uno Mille",
		Plate:    " xyz789 ",
		Color:    "green",
		Year:     2011,
	})
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", updated.Plate)
	assert.Equal(t, "Uno Mille", updated.Model)
}

func TestVehicleUpdateRejectsPlateOfOtherVehicle(t *testing.T) {
	svc, repos := newVehicleService(t)
	ctx := context.Background()
	client := seedClient(t, repos.db, "Ana")
	seedVehicle(t, repos.db, client.ID, "AAA111")
	second := seedVehicle(t, repos.db, client.ID, "BBB222")

	_, err := svc.Update(ctx, second.ID, VehicleInput{
		ClientID: client.ID, Model: "Uno", Plate: "aaa111", Color: "red", Year: 2010,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestVehicleCreateRejectsUnknownClient(t *testing.T) {
	svc, _ := newVehicleService(t)

	_, err := svc.Create(context.Background(), VehicleInput{
		ClientID: 999, Model: "Gol", Plate: "CCC333", Color: "blue", Year: 2015,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVehicleDeleteCascadesServiceRecords(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewVehicleService(repos.vehicles, repos.clients)
	ctx := context.Background()

	client := seedClient(t, db, "Ana")
	vehicle := seedVehicle(t, db, client.ID, "DDD444")

	recordSvc := NewServiceRecordService(repos.records, repos.vehicles)
	record, err := recordSvc.Create(ctx, ServiceRecordInput{
		VehicleID:   vehicle.ID,
		Description: "oil change",
		Status:      "PENDING",
		Price:       50,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, vehicle.ID))

	_, err = svc.Get(ctx, vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = recordSvc.Get(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
