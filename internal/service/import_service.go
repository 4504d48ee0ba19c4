package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
	"workshop-service/internal/utils"
)

// ImportService ingests vehicles in bulk from an uploaded spreadsheet.
// Expected column order: client id, model, plate, color, year,
// observations, image reference; the first row is a header.
type ImportService struct {
	vehicleRepo *repository.VehicleRepository
	clientRepo  *repository.ClientRepository
}

func NewImportService(vehicleRepo *repository.VehicleRepository, clientRepo *repository.ClientRepository) *ImportService {
	return &ImportService{
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
	}
}

// ImportVehicles reads the whole spreadsheet, assembles the batch of
// acceptable rows and inserts it in a single transaction. Rows that
// fail validation are skipped, not errors; a failed insert rolls the
// entire batch back. Returns the number of imported vehicles.
func (s *ImportService) ImportVehicles(ctx context.Context, filename string, file io.Reader) (int, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return 0, fmt.Errorf("%w: unsupported file type %q", ErrInvalidInput, ext)
	}

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot read spreadsheet: %v", ErrInvalidInput, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return 0, nil
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	// One bulk read of all client ids bounds the import to
	// O(clients + rows) instead of a lookup per row.
	validClientIDs, err := s.clientRepo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	var batch []model.Vehicle
	for _, row := range rows[1:] {
		candidate, ok := parseVehicleRow(row, len(batch))
		if !ok {
			continue
		}
		if _, known := validClientIDs[candidate.ClientID]; !known {
			continue
		}
		candidate.Plate = utils.NormalizePlate(candidate.Plate)
		batch = append(batch, candidate)
	}

	if err := s.vehicleRepo.BulkCreate(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// parseVehicleRow turns one data row into a candidate vehicle. The
// second return value is false when the row must be skipped: too few
// populated columns, empty first cell, or a client id that is not an
// integer. Missing optional fields get defaults rather than failing
// the row.
func parseVehicleRow(row []string, accepted int) (model.Vehicle, bool) {
	if len(row) < 4 || strings.TrimSpace(row[0]) == "" {
		return model.Vehicle{}, false
	}

	clientID, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil || clientID < 0 {
		return model.Vehicle{}, false
	}

	candidate := model.Vehicle{
		ClientID: uint(clientID),
		Model:    cellOrDefault(row, 1, "N/A"),
		Color:    cellOrDefault(row, 3, "N/A"),
		Year:     2000,
	}

	plate := cell(row, 2)
	if plate == "" {
		plate = fmt.Sprintf("NO-PLATE-%d", accepted)
	}
	candidate.Plate = strings.ToUpper(plate)

	if year := cell(row, 4); year != "" && isDigits(year) {
		candidate.Year, _ = strconv.Atoi(year)
	}
	if obs := cell(row, 5); obs != "" {
		candidate.Observations = &obs
	}
	if image := cell(row, 6); image != "" {
		candidate.ImageURL = &image
	}

	return candidate, true
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellOrDefault(row []string, i int, fallback string) string {
	if v := cell(row, i); v != "" {
		return v
	}
	return fallback
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
