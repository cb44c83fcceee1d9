package controllers

import (
	"log"
	"net/http"

	"ecostyleapi/services"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the JWT subject to a live session and holds the session
// lock for the rest of the request.
func SessionMiddleware(sessions *services.SessionRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRaw := c.Get("user")
			if userRaw == nil {
				return echo.ErrUnauthorized
			}
			token, ok := userRaw.(*jwt.Token)
			if !ok {
				return echo.ErrUnauthorized
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.ErrUnauthorized
			}
			sessionID, _ := claims["sub"].(string)
			if sessionID == "" {
				log.Println("Error while getting the token information!")
				return echo.ErrUnauthorized
			}

			session, err := sessions.Get(sessionID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session expired, please start a new one"})
			}
			session.Lock()
			defer session.Unlock()

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func currentSession(c echo.Context) (*services.Session, bool) {
	session, ok := c.Get(sessionContextKey).(*services.Session)
	return session, ok && session != nil
}
