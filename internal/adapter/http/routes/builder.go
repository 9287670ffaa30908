package routes

import (
	"ringbuilder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBuilderSessions = "/builder/sessions"
	PathCatalog         = "/catalog"
	PathCart            = "/cart"
	PathShops           = "/shops"
	PathInquiries       = "/inquiries"
)

func addBuilderRoutes(rg *gin.RouterGroup, builderHandler *handlers.BuilderHandler, cartHandler *handlers.CartHandler) {
	sessions := rg.Group(PathBuilderSessions)
	{
		sessions.POST("", builderHandler.ResumeSession)
		sessions.GET("/:id", builderHandler.GetSession)
		sessions.PATCH("/:id/setting", builderHandler.SelectSetting)
		sessions.PATCH("/:id/stone", builderHandler.SelectStone)
		sessions.PATCH("/:id/metal", builderHandler.UpdateMetalType)
		sessions.PATCH("/:id/ring-size", builderHandler.UpdateRingSize)
		sessions.PATCH("/:id/side-stones", builderHandler.UpdateSideStones)
		sessions.PATCH("/:id/engraving", builderHandler.UpdateEngraving)
		sessions.PATCH("/:id/gift-message", builderHandler.UpdateGiftMessage)
		sessions.PATCH("/:id/step", builderHandler.GoToStep)
		sessions.DELETE("/:id", builderHandler.ResetSession)
	}

	cart := rg.Group(PathCart)
	{
		cart.POST("", cartHandler.Submit)
		cart.GET("/configurations", cartHandler.ListConfigurations)
		cart.GET("/configurations/:id", cartHandler.GetConfiguration)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/settings", catalogHandler.ListSettings)
		catalog.GET("/settings/:id", catalogHandler.GetSetting)
		catalog.GET("/stones", catalogHandler.ListStones)
		catalog.GET("/stones/:id", catalogHandler.GetStone)
	}
}

func addMerchantRoutes(rg *gin.RouterGroup, settingsHandler *handlers.ShopSettingsHandler, inquiryHandler *handlers.InquiryHandler) {
	shops := rg.Group(PathShops)
	{
		shops.GET("/:shop/settings", settingsHandler.Get)
		shops.PUT("/:shop/settings", settingsHandler.Put)
	}

	inquiries := rg.Group(PathInquiries)
	{
		inquiries.POST("", inquiryHandler.Create)
		inquiries.GET("", inquiryHandler.ListByShop)
	}
}
