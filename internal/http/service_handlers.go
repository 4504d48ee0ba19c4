package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workshop-service/internal/model"
	"workshop-service/internal/service"
)

func serviceRecordInputFromForm(c *gin.Context) service.ServiceRecordInput {
	vehicleID, _ := strconv.ParseUint(c.PostForm("vehicle_id"), 10, 32)
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	return service.ServiceRecordInput{
		VehicleID:   uint(vehicleID),
		Description: c.PostForm("description"),
		Status:      c.PostForm("status"),
		Price:       price,
		Notes:       c.PostForm("observations"),
	}
}

func (h *Handler) newServiceRecordForm(c *gin.Context) {
	vehicleID, err := parseID(c, "vehicleID")
	if err != nil {
		h.handleError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "services/new.html", gin.H{
		"title":          fmt.Sprintf("New Service for %s (%s)", vehicle.Model, vehicle.Plate),
		"vehicle":        vehicle,
		"status_options": model.ServiceStatuses,
	})
}

func (h *Handler) createServiceRecord(c *gin.Context) {
	input := serviceRecordInputFromForm(c)

	record, err := h.recordService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/vehicles/%d", record.VehicleID))
}

func (h *Handler) editServiceRecordForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	record, err := h.recordService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), record.VehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "services/edit.html", gin.H{
		"title":          fmt.Sprintf("Edit Service #%d", record.ID),
		"record":         record,
		"vehicle":        vehicle,
		"status_options": model.ServiceStatuses,
	})
}

func (h *Handler) updateServiceRecord(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), id, serviceRecordInputFromForm(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/vehicles/%d", record.VehicleID))
}

func (h *Handler) deleteServiceRecord(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	vehicleID, err := h.recordService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/vehicles/%d", vehicleID))
}
