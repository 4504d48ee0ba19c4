package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))

	r.POST("/session", func(c *gin.Context) {
		if err := StartSession(c, "admin"); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	protected := r.Group("/", Auth())
	protected.POST("/clients", func(c *gin.Context) {
		*handled = true
		username, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, username)
	})

	return r
}

func TestAuthRedirectsAnonymousWithoutRunningHandler(t *testing.T) {
	var handled bool
	r := newAuthTestRouter(&handled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, handled, "protected handler must not run without a session")
}

func TestAuthPassesLoggedInUser(t *testing.T) {
	var handled bool
	r := newAuthTestRouter(&handled)

	// establish a session first
	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusNoContent, login.Code)
	sessionCookie := login.Result().Cookies()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", nil)
	for _, c := range sessionCookie {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
	assert.True(t, handled)
}
