package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"time"

	"ecostyleapi/controllers"
	"ecostyleapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              services.GetEnv("SENTRY_DSN", ""),
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "ecostyleapi@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	modelName := services.ParseLLMModelName(services.GetEnv("LLM_MODEL", services.Flash25.String()))
	log.Printf("Using model %s", modelName)
	processor, err := services.NewGoogleLLMProcessor(context.Background(), services.GetEnv("GOOGLE_API_KEY", ""), modelName)
	if errors.Is(err, services.ErrMissingCredential) {
		log.Fatal("GOOGLE_API_KEY environment variable is not set!")
	}
	if err != nil {
		log.Fatalf("Failed to initialize Google LLM processor: %v", err)
	}
	model, err := services.NewCachedAnalyzer(processor)
	if err != nil {
		log.Fatalf("Failed to initialize analysis cache: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := services.NewPipelineMetrics(registry)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	sessionTTL := services.GetEnvDuration("SESSION_TTL", 2*time.Hour)
	e := controllers.SetupServer(controllers.ServerConfig{
		Sessions:  services.NewSessionRegistry(sessionTTL, metrics),
		Model:     model,
		Weather:   services.NewMockWeatherProvider(0),
		Metrics:   metrics,
		Registry:  registry,
		JWTSecret: jwtSecret(),
		TokenTTL:  sessionTTL,
	})
	e.Debug = services.GetEnv("ENV", "local") == "local"

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":" + services.GetEnv("PORT", "8083")))
}

// Without JWT_SECRET tokens are signed with a per-process key and die with the process,
// which matches the lifetime of the in-memory sessions they point to.
func jwtSecret() []byte {
	if secret := services.GetEnv("JWT_SECRET", ""); secret != "" {
		return []byte(secret)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}
	log.Println("JWT_SECRET is not set, using a random per-process secret")
	return secret
}
