package server

import (
	"net/http"

	app "github.com/Dahreau/buy-01/src/app"

	"github.com/gin-gonic/gin"
)

func (a *AppHandler) Register(c *gin.Context) {
	var requestBody app.RegisterBody
	if err := c.BindJSON(&requestBody); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "can not parse register body"})
		return
	}
	token, err := a.auth.Register(c.Request.Context(), requestBody)
	if err != nil {
		surfaceError(c, err)
		return
	}
	a.openSession(c, token)
}

func (a *AppHandler) Login(c *gin.Context) {
	var requestBody app.LoginBody
	if err := c.BindJSON(&requestBody); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "can not parse login body"})
		return
	}
	token, err := a.auth.Login(c.Request.Context(), requestBody)
	if err != nil {
		surfaceError(c, err)
		return
	}
	a.openSession(c, token)
}

// Logout drops the session and points the browser back at the login view. The
// redirect target is advisory, not a hard navigation dependency.
func (a *AppHandler) Logout(c *gin.Context) {
	a.session.ClearSession()
	c.SetCookie(a.TokenCookieName, "", -1, "/", a.URL, false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "ref": "/login"})
}

// openSession stores the token returned by the auth service and mirrors it into
// the browser cookie, the one piece of client state that survives reloads.
func (a *AppHandler) openSession(c *gin.Context, token app.TokenResponse) {
	a.session.SetToken(token.Token)
	c.SetCookie(a.TokenCookieName, token.Token, a.cookieMaxAge, "/", a.URL, false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": token})
}
