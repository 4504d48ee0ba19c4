package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps the in-memory database alive for the whole
// test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Vehicle{},
		&model.ServiceRecord{},
	))
	return db
}

type testRepos struct {
	db       *gorm.DB
	users    *repository.UserRepository
	clients  *repository.ClientRepository
	vehicles *repository.VehicleRepository
	records  *repository.ServiceRecordRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		db:       db,
		users:    repository.NewUserRepository(db),
		clients:  repository.NewClientRepository(db),
		vehicles: repository.NewVehicleRepository(db),
		records:  repository.NewServiceRecordRepository(db),
	}
}

func seedClient(t *testing.T, db *gorm.DB, name string) *model.Client {
	t.Helper()
	client := &model.Client{Name: name, Phone: "555-0100"}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedVehicle(t *testing.T, db *gorm.DB, clientID uint, plate string) *model.Vehicle {
	t.Helper()
	vehicle := &model.Vehicle{
		ClientID: clientID,
		Model:    "Uno",
		Plate:    plate,
		Color:    "red",
		Year:     2010,
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}
