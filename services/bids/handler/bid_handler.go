package handler

import (
	"net/http"

	"bid-exchange/internal/bidservice"
	model "bid-exchange/internal/models"
	"bid-exchange/services/bids/helpers"
	"bid-exchange/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	Create(in bidservice.CreateBidInput) (model.Bid, error)
	List() ([]model.Bid, error)
	ListByBuyer(buyerID string) ([]model.Bid, error)
	GetByID(bidID string) (model.Bid, error)
	Modify(bidID string, in bidservice.ModifyBidInput) (model.Bid, error)
	Delete(bidID string) error
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// CreateBidHandler handles POST /buyer/:buyer_id/bids
func (h *BidHandler) CreateBidHandler(c *gin.Context) {
	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}
	buyerID := c.Param("buyer_id")

	bid, err := h.service.Create(bidservice.CreateBidInput{
		BuyerID:     buyerID,
		SellerID:    req.SellerID,
		ContactName: req.ContactName,
		ScheduledAt: req.ScheduledAt,
		Details:     req.Details,
		TotalBid:    req.TotalBid,
		Status:      req.Status,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateBidHandler: failed to create bid", map[string]any{
			"handler":   "CreateBidHandler",
			"buyer_id":  buyerID,
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid created successfully")
	helpers.LogSuccess("CreateBidHandler", "bid created successfully", map[string]any{
		"bid_id":    bid.BidID,
		"buyer_id":  bid.BuyerID,
		"seller_id": bid.SellerID,
		"total_bid": bid.TotalBid,
	})
}

// ListBidsHandler handles GET /bids
func (h *BidHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.List()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("ListBidsHandler: error retrieving bids", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// ListBidsByBuyerHandler handles GET /buyer/:buyer_id/bids
func (h *BidHandler) ListBidsByBuyerHandler(c *gin.Context) {
	buyerID := c.Param("buyer_id")
	bids, err := h.service.ListByBuyer(buyerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("ListBidsByBuyerHandler: error retrieving bids", map[string]any{"buyer_id": buyerID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsByBuyerHandler", "bids retrieved successfully", map[string]any{
		"buyer_id": buyerID,
		"count":    len(resp),
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BidHandler) GetBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	bid, err := h.service.GetByID(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
	helpers.LogSuccess("GetBidHandler", "bid retrieved successfully", map[string]any{
		"bid_id": bid.BidID,
	})
}

// ModifyBidHandler handles PUT /bids/:bid_id
func (h *BidHandler) ModifyBidHandler(c *gin.Context) {
	var req helpers.ModifyBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ModifyBidHandler", err)
		return
	}
	bidID := c.Param("bid_id")

	bid, err := h.service.Modify(bidID, bidservice.ModifyBidInput{
		BuyerID:     req.BuyerID,
		SellerID:    req.SellerID,
		ContactName: req.ContactName,
		ScheduledAt: req.ScheduledAt,
		Details:     req.Details,
		TotalBid:    req.TotalBid,
		Status:      req.Status,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ModifyBidHandler: failed to update bid", map[string]any{
			"handler": "ModifyBidHandler",
			"bid_id":  bidID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.ModifyBidResponse{
		SellerID: bid.SellerID,
		Details:  bid.Details,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid updated successfully")
	helpers.LogSuccess("ModifyBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.BidID,
		"status": string(bid.Status),
	})
}

// DeleteBidHandler handles DELETE /bids/:bid_id
func (h *BidHandler) DeleteBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	if err := h.service.Delete(bidID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("DeleteBidHandler: failed to delete bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id": bidID,
	})
}
