package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	_ "rentpulse/docs" // This will be auto-generated
	"rentpulse/internal/adapter/http/handlers"
	repository2 "rentpulse/internal/adapter/persistence/repository"
	"rentpulse/internal/config"
	"rentpulse/internal/domain/advisor"
	"rentpulse/internal/infrastructure/database"
	"rentpulse/internal/infrastructure/events"
	"rentpulse/internal/infrastructure/llm"
	"rentpulse/internal/infrastructure/payments"
	"rentpulse/internal/infrastructure/scraper"
	"rentpulse/internal/infrastructure/weather"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase"
	"rentpulse/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run(cfg *config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		logger.Log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	historyRepo := repository2.NewHistoryDynamoRepository(ddb)
	marketRepo := repository2.NewMarketDynamoRepository(ddb)

	pricingUseCase := usecase.NewPricingUseCase(historyRepo, cfg)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, pricingUseCase)
	forecastUseCase := usecase.NewForecastUseCase(historyRepo, marketRepo, cfg)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Log.Warnf("[routes] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	advisorUseCase := usecase.NewAdvisorUseCase(
		scraper.NewCompetitorScraper(),
		weather.NewClient(os.Getenv("WEATHER_BASE_URL")),
		newEventsSource(),
		marketRepo,
		newReasoningProvider(),
		cfg,
	)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	forecastHandler := handlers.NewForecastHandler(forecastUseCase)
	advisorHandler := handlers.NewAdvisorHandler(advisorUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler)
	addQuoteRoutes(v1, quoteHandler)
	addForecastRoutes(v1, forecastHandler)
	addAdvisorRoutes(v1, advisorHandler)
	addPaymentRoutes(v1, paymentHandler)
}

// newEventsSource returns nil when no API key is configured; the advisor
// then simply drops the events factor.
func newEventsSource() interfaces.IEventsSource {
	client, err := events.NewClient(os.Getenv("EVENTS_BASE_URL"), os.Getenv("EVENTS_API_KEY"))
	if err != nil {
		logger.Log.Warnf("[routes] events source not configured: %v", err)
		return nil
	}
	return client
}

// newReasoningProvider returns nil when no LLM is configured; the advisor
// use case then falls back to the template reasoning.
func newReasoningProvider() advisor.ReasoningProvider {
	rpm, _ := strconv.Atoi(os.Getenv("LLM_RPM"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reasoner, err := llm.NewReasoner(ctx, llm.Config{
		BaseURL: os.Getenv("LLM_BASE_URL"),
		APIKey:  os.Getenv("LLM_API_KEY"),
		Model:   os.Getenv("LLM_MODEL"),
		RPM:     rpm,
	})
	if err != nil {
		logger.Log.Warnf("[routes] reasoning provider not configured: %v", err)
		return nil
	}
	return reasoner
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))
}
