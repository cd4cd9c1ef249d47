package main

import (
	"net/http"

	"homeinsight-sqft/internal/handlers"
	"homeinsight-sqft/internal/services"
	"homeinsight-sqft/internal/transformers"
	"homeinsight-sqft/internal/validators"
	"homeinsight-sqft/pkg/config"
	"homeinsight-sqft/pkg/logger"
	"homeinsight-sqft/pkg/metrics"
	"homeinsight-sqft/pkg/openai"
	"homeinsight-sqft/pkg/scrapeowl"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config               *config.Config
	Router               *gin.Engine
	AddressHandler       *handlers.AddressHandler
	SquareFootageHandler *handlers.SquareFootageHandler
	Server               *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	app.checkCredentials()
	app.initializeMetrics()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// missing keys surface as per-request upstream failures, so only warn here
func (a *App) checkCredentials() {
	for _, name := range a.Config.MissingCredentials() {
		logger.GlobalLogger.Warnf("%s is not set; requests that need it will fail", name)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// upstream clients
	completionClient := openai.NewClient(a.Config.OpenAI, a.Config.Upstream.Timeout)
	scrapeClient := scrapeowl.NewClient(a.Config.ScrapeOwl, a.Config.Upstream.Timeout)

	// transformers
	addrTrans := transformers.NewAddressTransformer(a.Config.Listing.URLTemplate)
	propTrans := transformers.NewPropertyTransformer(transformers.NewPatternExtractor())

	// validators
	addressValidator := validators.NewAddressValidator()
	sqftValidator := validators.NewSquareFootageValidator()

	// services
	addressService := services.NewAddressService(completionClient, addrTrans, addressValidator)
	sqftService := services.NewSquareFootageService(scrapeClient, addrTrans, propTrans, sqftValidator)

	// handlers
	a.AddressHandler = handlers.NewAddressHandler(addressService)
	a.SquareFootageHandler = handlers.NewSquareFootageHandler(sqftService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}
