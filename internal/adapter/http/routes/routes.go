package routes

import (
	"log"
	"os"
	"strconv"

	_ "trendy_logistics/docs" // This will be auto-generated
	"trendy_logistics/internal/adapter/http/handlers"
	repository2 "trendy_logistics/internal/adapter/persistence/repository"
	"trendy_logistics/internal/infrastructure/database"
	"trendy_logistics/internal/infrastructure/notifications"
	"trendy_logistics/internal/usecase"
	"trendy_logistics/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	referenceRepo := repository2.NewReferenceDynamoRepository(ddb)
	rateRepo := repository2.NewFreightRateDynamoRepository(ddb)
	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)

	exchangeUseCase := usecase.NewExchangeRateUseCase(referenceRepo)
	estimateUseCase := usecase.NewEstimateUseCase(referenceRepo, rateRepo, exchangeUseCase)
	rateUseCase := usecase.NewFreightRateUseCase(referenceRepo, rateRepo)

	var notifier usecase.INotificationUseCase
	var notificationGateway interfaces.INotificationGateway
	brevoGateway, err := notifications.NewBrevoGateway(os.Getenv("BREVO_API_KEY"))
	if err != nil {
		log.Printf("Brevo gateway not configured: %v", err)
	} else {
		notificationGateway = brevoGateway
		notifier = usecase.NewNotificationUseCase(notificationGateway)
	}

	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo, referenceRepo, notifier)

	exchangeHandler := handlers.NewExchangeRateHandler(exchangeUseCase)
	freightHandler := handlers.NewFreightRateHandler(estimateUseCase, rateUseCase)
	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFreightRoutes(v1, freightHandler, exchangeHandler)
	addShipmentRoutes(v1, shipmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
