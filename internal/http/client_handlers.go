package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workshop-service/internal/service"
)

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.render(c, http.StatusOK, "clients/list.html", gin.H{
		"title":   "Clients",
		"clients": clients,
	})
}

func (h *Handler) newClientForm(c *gin.Context) {
	h.render(c, http.StatusOK, "clients/new.html", gin.H{
		"title": "New Client",
	})
}

func (h *Handler) createClient(c *gin.Context) {
	_, err := h.clientService.Create(c.Request.Context(), service.ClientInput{
		Name:  c.PostForm("name"),
		Phone: c.PostForm("phone"),
		Email: c.PostForm("email"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clients/")
}

func (h *Handler) showClient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	client, err := h.clientService.GetWithVehicles(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "clients/show.html", gin.H{
		"title":    fmt.Sprintf("Client: %s", client.Name),
		"client":   client,
		"vehicles": client.Vehicles,
	})
}

func (h *Handler) editClientForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.render(c, http.StatusOK, "clients/edit.html", gin.H{
		"title":  fmt.Sprintf("Edit Client: %s", client.Name),
		"client": client,
	})
}

func (h *Handler) updateClient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	_, err = h.clientService.Update(c.Request.Context(), id, service.ClientInput{
		Name:  c.PostForm("name"),
		Phone: c.PostForm("phone"),
		Email: c.PostForm("email"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/clients/%d", id))
}

func (h *Handler) deleteClient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clients/")
}
