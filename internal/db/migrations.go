package db

import (
	"fmt"

	"gorm.io/gorm"

	"workshop-service/internal/model"
)

// Migration order follows foreign-key dependencies: owners before
// dependents. The unique indexes on users.username, clients.email and
// vehicles.plate come from the model tags.
var migrationModels = []interface{}{
	&model.User{},
	&model.Client{},
	&model.Vehicle{},
	&model.ServiceRecord{},
}

func runMigrations(database *gorm.DB) error {
	for _, m := range migrationModels {
		if err := database.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
