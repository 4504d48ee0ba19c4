package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"workshop-service/internal/metrics"
	"workshop-service/internal/model"
	"workshop-service/internal/service"
)

// formVehicle carries vehicle fields between a form and its template,
// both for fresh forms and for re-presenting submitted values after a
// validation failure.
type formVehicle struct {
	ID           uint
	ClientID     uint
	Model        string
	Plate        string
	Color        string
	Year         int
	Observations string
	ImageURL     string
}

func formVehicleFromModel(v *model.Vehicle) formVehicle {
	fv := formVehicle{
		ID:       v.ID,
		ClientID: v.ClientID,
		Model:    v.Model,
		Plate:    v.Plate,
		Color:    v.Color,
		Year:     v.Year,
	}
	if v.Observations != nil {
		fv.Observations = *v.Observations
	}
	if v.ImageURL != nil {
		fv.ImageURL = *v.ImageURL
	}
	return fv
}

func vehicleInputFromForm(c *gin.Context) service.VehicleInput {
	clientID, _ := strconv.ParseUint(c.PostForm("client_id"), 10, 32)
	year, _ := strconv.Atoi(c.PostForm("year"))
	return service.VehicleInput{
		ClientID:     uint(clientID),
		Model:        c.PostForm("model"),
		Plate:        c.PostForm("plate"),
		Color:        c.PostForm("color"),
		Year:         year,
		Observations: c.PostForm("observations"),
	}
}

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "vehicles/list.html", gin.H{
		"title":    "Vehicles",
		"vehicles": vehicles,
	})
}

func (h *Handler) newVehicleForm(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "vehicles/new.html", gin.H{
		"title":   "New Vehicle",
		"clients": clients,
		"vehicle": formVehicle{},
	})
}

func (h *Handler) newVehicleFormForClient(c *gin.Context) {
	clientID, err := parseID(c, "clientID")
	if err != nil {
		h.handleError(c, err)
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "vehicles/new.html", gin.H{
		"title":   fmt.Sprintf("New Vehicle for %s", client.Name),
		"client":  client,
		"vehicle": formVehicle{ClientID: client.ID},
	})
}

func (h *Handler) createVehicle(c *gin.Context) {
	input := vehicleInputFromForm(c)

	vehicle, err := h.vehicleService.Create(c.Request.Context(), input)
	if err != nil {
		var conflict *service.PlateConflictError
		if errors.As(err, &conflict) {
			h.renderPlateConflict(c, input, 0, conflict)
			return
		}
		h.handleError(c, err)
		return
	}

	h.savePhotoIfPresent(c, vehicle.ID)
	c.Redirect(http.StatusSeeOther, "/vehicles/")
}

func (h *Handler) showVehicle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	vehicle, err := h.vehicleService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "vehicles/show.html", gin.H{
		"title":    fmt.Sprintf("Vehicle: %s", vehicle.Plate),
		"vehicle":  vehicle,
		"client":   vehicle.Owner,
		"services": vehicle.ServiceRecords,
	})
}

func (h *Handler) editVehicleForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "vehicles/new.html", gin.H{
		"title":   fmt.Sprintf("Edit Vehicle: %s", vehicle.Plate),
		"clients": clients,
		"vehicle": formVehicleFromModel(vehicle),
	})
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := vehicleInputFromForm(c)

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, input)
	if err != nil {
		var conflict *service.PlateConflictError
		if errors.As(err, &conflict) {
			h.renderPlateConflict(c, input, id, conflict)
			return
		}
		h.handleError(c, err)
		return
	}

	h.savePhotoIfPresent(c, vehicle.ID)
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/vehicles/%d", id))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/vehicles/")
}

func (h *Handler) importVehicles(c *gin.Context) {
	fileHeader, err := c.FormFile("excel_file")
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: spreadsheet file is required", service.ErrInvalidInput))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer file.Close()

	count, err := h.importService.ImportVehicles(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	metrics.RecordImportedVehicles(count)
	h.log.Info().Int("imported", count).Str("file", fileHeader.Filename).Msg("vehicle import finished")

	c.Header("X-Import-Success", strconv.Itoa(count))
	c.Redirect(http.StatusSeeOther, "/vehicles/")
}

// renderPlateConflict re-presents the vehicle form with the submitted
// values and an inline duplicate-plate message. id is zero for the
// create form.
func (h *Handler) renderPlateConflict(c *gin.Context, input service.VehicleInput, id uint, conflict *service.PlateConflictError) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	title := "New Vehicle"
	if id != 0 {
		title = fmt.Sprintf("Edit Vehicle: %s", conflict.Plate)
	}

	h.render(c, http.StatusOK, "vehicles/new.html", gin.H{
		"title":   title,
		"clients": clients,
		"vehicle": formVehicle{
			ID:           id,
			ClientID:     input.ClientID,
			Model:        input.Model,
			Plate:        input.Plate,
			Color:        input.Color,
			Year:         input.Year,
			Observations: input.Observations,
		},
		"error": fmt.Sprintf("Plate %q is already registered to another vehicle.", conflict.Plate),
	})
}

// savePhotoIfPresent stores an uploaded photo under the upload
// directory, named by vehicle id plus the original filename, and
// records its public URL. A failed save is logged and the request
// still succeeds, so a bad photo never loses the vehicle itself.
func (h *Handler) savePhotoIfPresent(c *gin.Context, vehicleID uint) {
	fileHeader, err := c.FormFile("photo")
	if err != nil || fileHeader.Filename == "" {
		return
	}

	safeName := fmt.Sprintf("%d_%s", vehicleID, filepath.Base(fileHeader.Filename))
	dst := filepath.Join(h.uploadDir, safeName)

	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		h.log.Warn().Err(err).Uint("vehicle_id", vehicleID).Msg("failed to save vehicle photo")
		return
	}

	imageURL := "/uploads/vehicles/" + safeName
	if err := h.vehicleService.AttachPhoto(c.Request.Context(), vehicleID, imageURL); err != nil {
		h.log.Warn().Err(err).Uint("vehicle_id", vehicleID).Msg("failed to record vehicle photo")
	}
}
