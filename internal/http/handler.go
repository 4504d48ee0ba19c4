package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"workshop-service/internal/http/middleware"
	"workshop-service/internal/service"
)

type Handler struct {
	authService    *service.AuthService
	clientService  *service.ClientService
	vehicleService *service.VehicleService
	recordService  *service.ServiceRecordService
	importService  *service.ImportService
	uploadDir      string
	log            zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	clientService *service.ClientService,
	vehicleService *service.VehicleService,
	recordService *service.ServiceRecordService,
	importService *service.ImportService,
	uploadDir string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		clientService:  clientService,
		vehicleService: vehicleService,
		recordService:  recordService,
		importService:  importService,
		uploadDir:      uploadDir,
		log:            log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/clients/")
	})

	protected := r.Group("/")
	protected.Use(authMiddleware)

	clients := protected.Group("/clients")
	{
		clients.GET("/", h.listClients)
		clients.GET("/new", h.newClientForm)
		clients.POST("/", h.createClient)
		clients.GET("/:id", h.showClient)
		clients.GET("/:id/edit", h.editClientForm)
		clients.POST("/:id/update", h.updateClient)
		clients.POST("/:id/delete", h.deleteClient)
	}

	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("/", h.listVehicles)
		vehicles.GET("/new", h.newVehicleForm)
		vehicles.GET("/new/:clientID", h.newVehicleFormForClient)
		vehicles.POST("/", h.createVehicle)
		vehicles.POST("/import", h.importVehicles)
		vehicles.GET("/:id", h.showVehicle)
		vehicles.GET("/:id/edit", h.editVehicleForm)
		vehicles.POST("/:id/update", h.updateVehicle)
		vehicles.POST("/:id/delete", h.deleteVehicle)
	}

	services := protected.Group("/services")
	{
		services.GET("/new/:vehicleID", h.newServiceRecordForm)
		services.POST("/", h.createServiceRecord)
		services.GET("/:id/edit", h.editServiceRecordForm)
		services.POST("/:id/update", h.updateServiceRecord)
		services.POST("/:id/delete", h.deleteServiceRecord)
	}
}

// render wraps c.HTML and always passes the logged-in username through
// so the navigation bar can show it.
func (h *Handler) render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["username"]; !ok {
		username, _ := middleware.CurrentUser(c)
		data["username"] = username
	}
	c.HTML(status, template, data)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.render(c, http.StatusNotFound, "shared/error.html", gin.H{
			"title":   "Not found",
			"message": "The requested record does not exist.",
		})
	case errors.Is(err, service.ErrInvalidInput):
		h.render(c, http.StatusBadRequest, "shared/error.html", gin.H{
			"title":   "Invalid request",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrConflict):
		h.render(c, http.StatusConflict, "shared/error.html", gin.H{
			"title":   "Conflict",
			"message": err.Error(),
		})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler error")
		h.render(c, http.StatusInternalServerError, "shared/error.html", gin.H{
			"title":   "Internal error",
			"message": "Something went wrong. Please try again.",
		})
	}
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, service.ErrNotFound
	}
	return uint(id), nil
}
