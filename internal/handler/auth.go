package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/fernape-Domino/Portal-Escritura/internal/config"
	"github.com/fernape-Domino/Portal-Escritura/internal/models"
	"github.com/fernape-Domino/Portal-Escritura/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves the welcome screen and the PIN gate pages.
type AuthHandler struct {
	Session config.SessionConfig
}

func NewAuthHandler(session config.SessionConfig) *AuthHandler {
	return &AuthHandler{Session: session}
}

// Welcome renders the public landing page.
func (h *AuthHandler) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", gin.H{})
}

// ShowPin renders the PIN prompt, with a notice when the session was
// closed for inactivity.
func (h *AuthHandler) ShowPin(c *gin.Context) {
	var errMsg string
	if c.Query("expired") != "" {
		errMsg = "Tu sesión se cerró por inactividad. Ingresa el PIN de nuevo."
	}
	c.HTML(http.StatusOK, "pin.html", gin.H{"error": errMsg})
}

// SubmitPin checks the submitted PIN and opens a session on success.
// A wrong PIN re-renders the prompt with an inline error, no lockout.
func (h *AuthHandler) SubmitPin(c *gin.Context) {
	entered := c.PostForm("pin")

	if !h.checkPIN(entered) {
		c.HTML(http.StatusOK, "pin.html", gin.H{
			"error": "PIN incorrecto. Inténtalo de nuevo.",
		})
		return
	}

	token, err := util.NewSessionToken(h.Session.Secret, time.Now())
	if err != nil {
		c.String(http.StatusInternalServerError, "no se pudo abrir la sesión")
		return
	}

	c.SetCookie(h.Session.CookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/inicio")
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.Session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/pin")
}

// Home renders the category tiles.
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"categories": models.Categories,
	})
}

// checkPIN compares against the bcrypt hash when one is configured,
// otherwise against the plain PIN in constant time.
func (h *AuthHandler) checkPIN(entered string) bool {
	if h.Session.PINHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.Session.PINHash), []byte(entered)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(entered), []byte(h.Session.PIN)) == 1
}
