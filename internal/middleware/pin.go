package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/fernape-Domino/Portal-Escritura/internal/config"
	"github.com/fernape-Domino/Portal-Escritura/internal/util"

	"github.com/gin-gonic/gin"
)

// PinRequired gates a route behind a prior successful PIN submission.
// The session lives in a signed cookie; every request through the gate
// checks the inactivity window and refreshes the last-activity instant.
func PinRequired(cfg config.SessionConfig) gin.HandlerFunc {
	timeout := cfg.InactivityTimeout()

	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cfg.CookieName)
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusFound, "/pin")
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(cfg.Secret, tokenStr)
		if err != nil || !claims.Authorized {
			c.Redirect(http.StatusFound, "/pin")
			c.Abort()
			return
		}

		now := time.Now()

		// inactivity: clear the session and send back to the PIN prompt
		if claims.LastActive == 0 || now.Sub(time.Unix(claims.LastActive, 0)) > timeout {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/pin?expired=1")
			c.Abort()
			return
		}

		// refresh last activity
		refreshed, err := util.NewSessionToken(cfg.Secret, now)
		if err != nil {
			log.Printf("refresh session token: %v", err)
		} else {
			c.SetCookie(cfg.CookieName, refreshed, 0, "/", "", false, true)
		}
		c.Next()
	}
}
