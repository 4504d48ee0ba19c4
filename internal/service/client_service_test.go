package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-service/internal/model"
)

func TestClientCreateRequiresName(t *testing.T) {
	repos := newTestRepos(newTestDB(t))
	svc := NewClientService(repos.clients)

	_, err := svc.Create(context.Background(), ClientInput{Name: "  ", Phone: "555"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClientCreateOmitsBlankEmail(t *testing.T) {
	repos := newTestRepos(newTestDB(t))
	svc := NewClientService(repos.clients)

	client, err := svc.Create(context.Background(), ClientInput{Name: "Ana", Phone: "555", Email: " "})
	require.NoError(t, err)
	assert.Nil(t, client.Email)
}

func TestClientGetUnknownID(t *testing.T) {
	repos := newTestRepos(newTestDB(t))
	svc := NewClientService(repos.clients)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientDeleteCascadesVehiclesAndServices(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewClientService(repos.clients)
	ctx := context.Background()

	client := seedClient(t, db, "Ana")
	other := seedClient(t, db, "Bruno")
	vehicle := seedVehicle(t, db, client.ID, "AAA111")
	seedVehicle(t, db, other.ID, "BBB222")

	record := &model.ServiceRecord{
		VehicleID:   vehicle.ID,
		Description: "brakes",
		StartDate:   "2026-01-15",
		Status:      model.ServiceStatusPending,
		Price:       120,
	}
	require.NoError(t, db.Create(record).Error)

	require.NoError(t, svc.Delete(ctx, client.ID))

	var clientCount, vehicleCount, recordCount int64
	require.NoError(t, db.Model(&model.Client{}).Count(&clientCount).Error)
	require.NoError(t, db.Model(&model.Vehicle{}).Count(&vehicleCount).Error)
	require.NoError(t, db.Model(&model.ServiceRecord{}).Count(&recordCount).Error)

	assert.Equal(t, int64(1), clientCount)
	assert.Equal(t, int64(1), vehicleCount)
	assert.Equal(t, int64(0), recordCount)

	// the unrelated client and vehicle survive
	remaining, err := svc.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno", remaining.Name)
}

func TestClientUpdateUnknownID(t *testing.T) {
	repos := newTestRepos(newTestDB(t))
	svc := NewClientService(repos.clients)

	_, err := svc.Update(context.Background(), 7, ClientInput{Name: "Ana", Phone: "555"})
	assert.ErrorIs(t, err, ErrNotFound)
}
