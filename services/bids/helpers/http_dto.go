package helpers

import (
	"time"

	model "bid-exchange/internal/models"
)

// Request/Response DTOs
type CreateBidRequest struct {
	SellerID    string           `json:"seller_id" binding:"required"`
	ContactName string           `json:"contact_name"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Details     model.BidDetails `json:"details" binding:"required"`
	TotalBid    float64          `json:"total_bid" binding:"required,gt=0"`
	Status      string           `json:"status"`
}

// ModifyBidRequest carries a partial update. Absent fields keep the stored
// values; total_bid is always written, absent or zero included.
type ModifyBidRequest struct {
	BuyerID     *string          `json:"buyer_id"`
	SellerID    *string          `json:"seller_id"`
	ContactName *string          `json:"contact_name"`
	ScheduledAt *time.Time       `json:"scheduled_at"`
	Details     model.BidDetails `json:"details"`
	TotalBid    float64          `json:"total_bid"`
	Status      *string          `json:"status"`
}

type BidResponse struct {
	BidID       string           `json:"bid_id"`
	BuyerID     string           `json:"buyer_id"`
	SellerID    string           `json:"seller_id"`
	ContactName string           `json:"contact_name"`
	ScheduledAt string           `json:"scheduled_at"`
	Details     model.BidDetails `json:"details"`
	TotalBid    float64          `json:"total_bid"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ModifyBidResponse is the reduced shape returned by the modify operation.
type ModifyBidResponse struct {
	SellerID string           `json:"seller_id"`
	Details  model.BidDetails `json:"details"`
}

// NewBidResponse shapes a bid for the wire, timestamps in RFC3339.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		BuyerID:     bid.BuyerID,
		SellerID:    bid.SellerID,
		ContactName: bid.ContactName,
		ScheduledAt: bid.ScheduledAt.UTC().Format(time.RFC3339),
		Details:     bid.Details,
		TotalBid:    bid.TotalBid,
		Status:      string(bid.Status),
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
