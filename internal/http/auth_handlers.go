package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workshop-service/internal/http/middleware"
	"workshop-service/internal/service"
)

func (h *Handler) loginForm(c *gin.Context) {
	if _, ok := middleware.SessionUser(c); ok {
		c.Redirect(http.StatusSeeOther, "/clients/")
		return
	}
	c.HTML(http.StatusOK, "auth/login.html", gin.H{"title": "Login"})
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "auth/login.html", gin.H{
				"title": "Login",
				"error": "Invalid username or password.",
			})
			return
		}
		h.handleError(c, err)
		return
	}

	if err := middleware.StartSession(c, user.Username); err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clients/")
}

func (h *Handler) logout(c *gin.Context) {
	if err := middleware.EndSession(c); err != nil {
		h.log.Warn().Err(err).Msg("failed to clear session")
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
