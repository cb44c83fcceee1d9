package controllers

import (
	"fmt"
	"net/http"

	"ecostyleapi/models"
	"ecostyleapi/services"

	"github.com/labstack/echo/v4"
)

const defaultWeatherLocation = "New York"

type OutfitsController struct {
	Model   services.GenerativeModel
	Weather services.WeatherProvider
	Metrics *services.PipelineMetrics
}

func (controller *OutfitsController) WeatherRoutes(g *echo.Group) {
	g.GET("", controller.CurrentWeather)
	g.POST("/refresh", controller.RefreshWeather)
}

func (controller *OutfitsController) OutfitRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateOutfits)
	g.GET("", controller.ListOutfits)
	g.POST("/:index/feedback", controller.OutfitFeedback)
}

func (controller *OutfitsController) CurrentWeather(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, session.Weather)
}

func (controller *OutfitsController) RefreshWeather(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var input models.WeatherRefreshIn
	// an empty body is a refresh for the default location
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if err := c.Validate(&input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	location := input.Location
	if location == "" {
		location = defaultWeatherLocation
	}

	session.Weather = controller.Weather.Current(c.Request().Context(), location)
	fmt.Printf("[Session: %s] Weather for %s: %d°F, %s\n", session.ID, location, session.Weather.Temp, session.Weather.Condition)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Weather updated: %d°F, %s", session.Weather.Temp, session.Weather.Condition),
		"weather": session.Weather,
	})
}

// GenerateOutfits replaces the session's outfits with a fresh generation. A failed
// generation still replaces them, leaving the list empty.
func (controller *OutfitsController) GenerateOutfits(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var input models.GenerateOutfitsIn
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if err := c.Validate(&input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	if session.Wardrobe.Len() == 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Add some items to your closet first"})
	}

	outfits := services.ComposeOutfits(c.Request().Context(), session.Wardrobe.Items(), session.Weather, controller.Model)
	session.ReplaceOutfits(outfits, input.Occasion)
	controller.Metrics.ObserveGeneration(len(outfits))
	fmt.Printf("[Session: %s] Generated %d outfits for %q\n", session.ID, len(outfits), input.Occasion)

	return c.JSON(http.StatusOK, outfitListOut(session))
}

func (controller *OutfitsController) ListOutfits(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, outfitListOut(session))
}

func (controller *OutfitsController) OutfitFeedback(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var index int
	if err := echo.PathParamsBinder(c).Int("index", &index).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid outfit index"})
	}
	if index < 1 || index > len(session.Outfits) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Outfit not found"})
	}
	var input models.OutfitFeedbackIn
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	fmt.Printf("[Session: %s] Feedback %s on outfit %d %q\n", session.ID, input.Action, index, session.Outfits[index-1].OutfitName)

	return c.JSON(http.StatusOK, map[string]string{"message": models.FeedbackAction(input.Action).Message()})
}
