package controllers

import (
	"net/http"
	"time"

	"ecostyleapi/models"
	"ecostyleapi/services"

	"github.com/go-playground/validator"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type ServerConfig struct {
	Sessions  *services.SessionRegistry
	Model     services.GenerativeModel
	Weather   services.WeatherProvider
	Metrics   *services.PipelineMetrics
	Registry  *prometheus.Registry
	JWTSecret []byte
	TokenTTL  time.Duration
}

func SetupServer(config ServerConfig) *echo.Echo {
	e := echo.New()

	v := validator.New()
	v.RegisterValidation("occasion", models.ValidateOccasion)
	e.Validator = &CustomValidator{validator: v}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit("25M"))

	if config.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{})))
	}

	authenticated := []echo.MiddlewareFunc{
		echojwt.JWT(config.JWTSecret),
		SessionMiddleware(config.Sessions),
	}

	sessionController := SessionController{
		Sessions:  config.Sessions,
		JWTSecret: config.JWTSecret,
		TokenTTL:  config.TokenTTL,
	}
	sessionController.SessionRoutes(e.Group(""), authenticated...)

	clothesController := ClothesController{Model: config.Model, Metrics: config.Metrics}
	closetGroup := e.Group("/closet", authenticated...)
	clothesController.ClothingRoutes(closetGroup)

	outfitsController := OutfitsController{Model: config.Model, Weather: config.Weather, Metrics: config.Metrics}
	weatherGroup := e.Group("/weather", authenticated...)
	outfitsController.WeatherRoutes(weatherGroup)
	outfitGroup := e.Group("/outfits", authenticated...)
	outfitsController.OutfitRoutes(outfitGroup)

	sustainabilityController := SustainabilityController{}
	sustainabilityGroup := e.Group("/sustainability", authenticated...)
	sustainabilityController.SustainabilityRoutes(sustainabilityGroup)

	return e
}
