package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userSessionKey     = "user"
	usernameContextKey = "username"
)

// Auth gates every protected route on the presence of a logged-in
// username in the session. Anonymous requests are redirected to the
// login form before any handler runs.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username, _ := session.Get(userSessionKey).(string)
		if username == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(usernameContextKey, username)
		c.Next()
	}
}

// CurrentUser returns the authenticated username placed into the
// context by Auth.
func CurrentUser(c *gin.Context) (string, bool) {
	value, exists := c.Get(usernameContextKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}

// StartSession records a successful login in the session cookie.
func StartSession(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(userSessionKey, username)
	return session.Save()
}

// EndSession drops the login state.
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// SessionUser reads the logged-in username straight from the session,
// for routes outside the Auth group (the login form itself).
func SessionUser(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	username, _ := session.Get(userSessionKey).(string)
	return username, username != ""
}
