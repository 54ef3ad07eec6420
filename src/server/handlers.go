package server

import (
	"errors"
	"log"
	"net/http"

	app "github.com/Dahreau/buy-01/src/app"
	cfg "github.com/Dahreau/buy-01/src/configuration"
	db "github.com/Dahreau/buy-01/src/repository"

	"github.com/gin-gonic/gin"
)

type (
	AppHandler struct {
		session    *app.SessionManager
		auth       app.AuthAPI
		products   app.ProductAPI
		media      app.MediaAPI
		aggregator *app.Aggregator

		URL             string
		TokenCookieName string
		cookieMaxAge    int
		maxUploadSize   int64
	}
)

func NewHandler(config *cfg.Properties, auth app.AuthAPI, products app.ProductAPI, media app.MediaAPI) *AppHandler {
	store, err := db.NewTokenStore(config)
	if err != nil {
		log.Fatalf("token store not available %v", err)
		return nil
	}
	if !store.Connect() {
		log.Fatalf("can not connect to token store")
		return nil
	}
	session := app.NewSessionManager(store)
	session.Subscribe(func(loggedIn bool) {
		log.Printf("session state changed, logged in: %v", loggedIn)
	})

	return &AppHandler{
		session:         session,
		auth:            auth,
		products:        products,
		media:           media,
		aggregator:      app.NewAggregator(media),
		URL:             config.Server.Name,
		TokenCookieName: config.Session.TokenCookieName,
		cookieMaxAge:    int(config.Session.CookieMaxAge.Seconds()),
		maxUploadSize:   config.Media.MaxUploadSize,
	}
}

func (a *AppHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Session gives the browser the advisory view of the current session: logged-in
// flag plus whatever claims decode out of the token. UI gating only, each
// backend re-checks the token on every call.
func (a *AppHandler) Session(c *gin.Context) {
	token, loggedIn := a.currentToken(c)
	payload := gin.H{"loggedIn": loggedIn}
	if claims, ok := a.session.DecodeClaims(token); ok {
		payload["userId"] = claims.SubjectID
		payload["role"] = claims.Role
		payload["seller"] = claims.Role == app.RoleSeller
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": payload})
}

// currentToken reads the session token, restoring it from the browser cookie
// when the in-process store is empty (the cookie survives page reloads).
func (a *AppHandler) currentToken(c *gin.Context) (string, bool) {
	if token, ok := a.session.Token(); ok {
		return token, true
	}
	cookie, err := c.Cookie(a.TokenCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	a.session.SetToken(cookie)
	return cookie, true
}

// surfaceError forwards a primary-action failure to the view verbatim, one
// level, no retry.
func surfaceError(c *gin.Context, err error) {
	apiErr := &app.APIError{}
	if errors.As(err, &apiErr) {
		c.IndentedJSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}
	c.IndentedJSON(http.StatusBadGateway, gin.H{"message": err.Error()})
}
