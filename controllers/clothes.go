package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"ecostyleapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type ClothesController struct {
	Model   services.GenerativeModel
	Metrics *services.PipelineMetrics
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.POST("/analyze", controller.AnalyzeClothing)
	g.POST("/items", controller.AddClothing)
	g.GET("/items", controller.ListClothes)
	g.GET("/filters", controller.FilterOptions)
	g.GET("/items/:id/image", controller.ClothingImage)
	g.DELETE("/items/:id", controller.RemoveClothing)
}

// AnalyzeClothing classifies an uploaded photo and keeps the result pending until
// the user confirms it with AddClothing. A new upload replaces the pending one.
func (controller *ClothesController) AnalyzeClothing(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Please upload a photo of your clothing item"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Could not read the uploaded photo"})
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxImageBytes+1))
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Session: %s] error reading upload %s: %w", session.ID, fileHeader.Filename, err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Could not read the uploaded photo"})
	}
	mimeType, err := services.DetectClothingImage(data)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImage) {
			return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := services.AnalyzeClothing(c.Request().Context(), controller.Model, data, mimeType)
	controller.Metrics.ObserveAnalysis(result.Outcome)
	fmt.Printf("[Session: %s] Analyzed %s (%s): %s, fallbacks %v\n", session.ID, fileHeader.Filename, mimeType, result.Outcome, result.FallbackFields)

	session.Pending = &services.PendingAnalysis{
		Result:   result,
		Image:    data,
		MIMEType: mimeType,
	}
	return c.JSON(http.StatusOK, analysisOut(result))
}

func (controller *ClothesController) AddClothing(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	if session.Pending == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Nothing to add, please analyze a photo first"})
	}
	item := session.Pending.Result.Item
	item.Image = session.Pending.Image
	item.ImageMIMEType = session.Pending.MIMEType

	added := session.Wardrobe.Add(item)
	session.Pending = nil
	controller.Metrics.WardrobeItemAdded()
	fmt.Printf("[Session: %s] Item #%d added, wardrobe size %d\n", session.ID, added.ID, session.Wardrobe.Len())

	return c.JSON(http.StatusCreated, clothingItemOut(added))
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var filter services.ClothingFilter
	err := echo.QueryParamsBinder(c).
		String("type", &filter.Type).
		String("style", &filter.Style).
		String("season", &filter.Season).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid filter"})
	}

	return c.JSON(http.StatusOK, closetListOut(session, filter))
}

func (controller *ClothesController) FilterOptions(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, session.Wardrobe.FilterOptions())
}

func (controller *ClothesController) ClothingImage(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var id uint
	var width int
	if err := echo.PathParamsBinder(c).Uint("id", &id).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item id"})
	}
	if err := echo.QueryParamsBinder(c).Int("width", &width).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid width"})
	}
	item, found := session.Wardrobe.Get(id)
	if !found || len(item.Image) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	if width > 0 {
		thumbnail, err := services.Thumbnail(item.Image, width)
		if err == nil {
			return c.Blob(http.StatusOK, "image/jpeg", thumbnail)
		}
		// formats imaging cannot decode (webp, heic) are served as uploaded
		fmt.Printf("[Session: %s] Thumbnail for item #%d failed: %v\n", session.ID, id, err)
	}
	return c.Blob(http.StatusOK, item.ImageMIMEType, item.Image)
}

func (controller *ClothesController) RemoveClothing(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var id uint
	if err := echo.PathParamsBinder(c).Uint("id", &id).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item id"})
	}
	if !session.Wardrobe.RemoveByID(id) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	controller.Metrics.WardrobeItemRemoved()
	fmt.Printf("[Session: %s] Item #%d removed, wardrobe size %d\n", session.ID, id, session.Wardrobe.Len())
	return c.NoContent(http.StatusNoContent)
}
