package controllers

import (
	"net/http"

	"ecostyleapi/services"

	"github.com/labstack/echo/v4"
)

type SustainabilityController struct{}

func (controller *SustainabilityController) SustainabilityRoutes(g *echo.Group) {
	g.GET("", controller.WardrobeReport)
}

func (controller *SustainabilityController) WardrobeReport(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, services.AggregateWardrobe(session.Wardrobe.Items()))
}
