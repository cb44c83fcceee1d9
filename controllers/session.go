package controllers

import (
	"fmt"
	"net/http"
	"time"

	"ecostyleapi/models"
	"ecostyleapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type SessionController struct {
	Sessions  *services.SessionRegistry
	JWTSecret []byte
	TokenTTL  time.Duration
}

// SessionRoutes registers the public routes, authenticated only guards ending a session.
func (controller *SessionController) SessionRoutes(g *echo.Group, authenticated ...echo.MiddlewareFunc) {
	g.POST("/session", controller.StartSession)
	g.DELETE("/session", controller.EndSession, authenticated...)
	g.GET("/occasions", controller.ListOccasions)
}

func (controller *SessionController) StartSession(c echo.Context) error {
	session := controller.Sessions.Create()
	token, err := GenerateSessionToken(session.ID, controller.JWTSecret, controller.TokenTTL)
	if err != nil {
		controller.Sessions.Delete(session.ID)
		sentry.CaptureException(fmt.Errorf("[Session: %s] error signing token: %w", session.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not start a session"})
	}
	return c.JSON(http.StatusCreated, models.SessionOut{
		SessionID:   session.ID,
		AccessToken: token,
	})
}

func (controller *SessionController) EndSession(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	controller.Sessions.Delete(session.ID)
	fmt.Printf("[Session: %s] Ended\n", session.ID)
	return c.NoContent(http.StatusNoContent)
}

func (controller *SessionController) ListOccasions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"occasions": models.Occasions})
}
