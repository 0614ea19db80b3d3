package server

import (
	handler "bid-exchange/services/bids/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(bidService handler.BidServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	bidHandler := handler.NewBidHandler(bidService)

	buyer := router.Group("/buyer")
	{
		buyer.POST("/:buyer_id/bids", RequireAccessToken, bidHandler.CreateBidHandler)
		buyer.GET("/:buyer_id/bids", bidHandler.ListBidsByBuyerHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", bidHandler.ListBidsHandler)
		bids.GET("/:bid_id", bidHandler.GetBidHandler)
		bids.PUT("/:bid_id", bidHandler.ModifyBidHandler)
		bids.DELETE("/:bid_id", bidHandler.DeleteBidHandler)
	}

	return router
}
