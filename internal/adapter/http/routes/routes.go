package routes

import (
	"log"
	"os"
	"strconv"

	_ "ringbuilder/docs" // This will be auto-generated
	"ringbuilder/internal/adapter/http/handlers"
	repository2 "ringbuilder/internal/adapter/persistence/repository"
	"ringbuilder/internal/infrastructure/database"
	"ringbuilder/internal/infrastructure/email"
	"ringbuilder/internal/infrastructure/shopify"
	"ringbuilder/internal/usecase"
	"ringbuilder/internal/usecase/interfaces"

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

	sessionRepo := repository2.NewBuilderSessionDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	shopSettingsRepo := repository2.NewShopSettingsDynamoRepository(ddb)
	configurationRepo := repository2.NewConfigurationDynamoRepository(ddb)
	inquiryRepo := repository2.NewInquiryDynamoRepository(ddb)

	builderUseCase := usecase.NewBuilderUseCase(sessionRepo, catalogRepo, shopSettingsRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	shopSettingsUseCase := usecase.NewShopSettingsUseCase(shopSettingsRepo)

	var cartGateway interfaces.ICartGateway
	gateway, err := shopify.NewCartGateway()
	if err != nil {
		log.Printf("Shopify cart gateway not configured: %v", err)
	} else {
		cartGateway = gateway
	}
	cartUseCase := usecase.NewCartUseCase(sessionRepo, configurationRepo, shopSettingsRepo, cartGateway)

	var notifier interfaces.IInquiryNotifier
	sender, err := email.NewSendGridNotifier(os.Getenv("SENDGRID_API_KEY"), os.Getenv("INQUIRY_FROM_EMAIL"))
	if err != nil {
		log.Printf("Inquiry mail notifier not configured: %v", err)
	} else {
		notifier = sender
	}
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, notifier, os.Getenv("MERCHANT_NOTIFY_EMAIL"))

	builderHandler := handlers.NewBuilderHandler(builderUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	shopSettingsHandler := handlers.NewShopSettingsHandler(shopSettingsUseCase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBuilderRoutes(v1, builderHandler, cartHandler)
	addCatalogRoutes(v1, catalogHandler)
	addMerchantRoutes(v1, shopSettingsHandler, inquiryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
