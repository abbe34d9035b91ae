package routes

import (
	"design_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathPackages  = "/packages"
	PathSLAConfig = "/sla-config"
)

func addCatalogRoutes(rg *gin.RouterGroup, packageHandler *handlers.DesignPackageHandler, slaHandler *handlers.SLAConfigHandler) {
	packages := rg.Group(PathPackages)
	{
		packages.POST("", packageHandler.UpsertPackage)
		packages.PUT("/:id", packageHandler.UpsertPackage)
		packages.GET("/:id", packageHandler.GetPackage)
	}

	sla := rg.Group(PathSLAConfig)
	{
		sla.GET("", slaHandler.GetSLAConfig)
		sla.PUT("", slaHandler.UpdateSLAConfig)
	}
}

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.DesignOrderHandler,
	trackingHandler *handlers.OrderTrackingHandler,
	paymentHandler *handlers.OrderPaymentHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)

		// Operator dashboard.
		orders.GET("/queue", trackingHandler.GetQueue)
		orders.GET("/stats", trackingHandler.GetStats)

		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/status", trackingHandler.GetCustomerStatus)

		orders.PATCH("/:id/start", orderHandler.StartProduction)
		orders.PATCH("/:id/deliver", orderHandler.Deliver)
		orders.PATCH("/:id/revision", orderHandler.RequestRevision)
		orders.PATCH("/:id/approve", orderHandler.Approve)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)

		orders.POST("/:id/payments", paymentHandler.CreatePayment)
		orders.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
