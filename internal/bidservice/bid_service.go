package bidservice

import (
	"fmt"
	"strings"
	"time"

	"bid-exchange/internal/biderrors"
	"bid-exchange/internal/models"
	"bid-exchange/internal/notifier"
	"bid-exchange/internal/repository"
	"bid-exchange/utils"
)

// NotificationDispatcher delivers one notification event to the buyer- or
// seller-facing side. Implementations must not block the caller and must
// swallow delivery failures.
type NotificationDispatcher interface {
	Dispatch(event string, buyer, seller models.Party)
}

// BidService defines the business logic for the bid lifecycle
type BidService struct {
	repo       repository.ExchangeDB
	dispatcher NotificationDispatcher
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.ExchangeDB, dispatcher NotificationDispatcher) *BidService {
	return &BidService{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// CreateBidInput carries the fields of a buyer-initiated bid.
type CreateBidInput struct {
	BuyerID     string
	SellerID    string
	ContactName string
	ScheduledAt time.Time
	Details     models.BidDetails
	TotalBid    float64
	Status      string
}

// Create validates and stores a new bid, then dispatches the placed
// notification pair. Timestamps are set to now; an empty status defaults to
// pending.
func (s *BidService) Create(in CreateBidInput) (models.Bid, error) {
	if in.BuyerID == "" || in.SellerID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing buyerID or sellerID", biderrors.ErrValidation)
	}
	if len(in.Details) == 0 {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid details", biderrors.ErrValidation)
	}

	status, err := models.ParseStatus(in.Status)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - %v", biderrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	bid := models.Bid{
		BuyerID:     in.BuyerID,
		SellerID:    in.SellerID,
		ContactName: in.ContactName,
		ScheduledAt: in.ScheduledAt,
		Details:     in.Details,
		TotalBid:    in.TotalBid,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.CreateBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to create bid for buyer %s: %w", in.BuyerID, err)
	}

	s.notifyPair(created, notifier.EventBuyerOrderPlaced, notifier.EventSellerOrderPlaced)

	return created, nil
}

// List returns all bids, unfiltered and unpaginated
func (s *BidService) List() ([]models.Bid, error) {
	bids, err := s.repo.ListBids()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}

// ListByBuyer returns all bids placed by a buyer. The buyer ID is taken at
// face value; ownership against the requester's identity is not checked.
func (s *BidService) ListByBuyer(buyerID string) ([]models.Bid, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - empty buyer ID", biderrors.ErrValidation)
	}

	bids, err := s.repo.ListBidsByBuyer(buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for buyer %s: %w", buyerID, err)
	}
	return bids, nil
}

// GetByID returns a single bid or ErrBidNotFound
func (s *BidService) GetByID(bidID string) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid ID", biderrors.ErrValidation)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// ModifyBidInput carries a partial update. Nil pointer fields keep the
// fetched record's current values. TotalBid is not a pointer on purpose:
// it is always written, zero value included.
type ModifyBidInput struct {
	BuyerID     *string
	SellerID    *string
	ContactName *string
	ScheduledAt *time.Time
	Details     models.BidDetails
	TotalBid    float64
	Status      *string
}

// Modify merges the supplied fields over the stored bid and persists it.
// Exactly one notification pair fires per call, keyed on the requested
// status: approved triggers the inventory decrement and the approval pair,
// denied triggers the declined pair, anything else (including an omitted
// status) triggers the edited pair.
func (s *BidService) Modify(bidID string, in ModifyBidInput) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid ID", biderrors.ErrValidation)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to fetch bid %s for update: %w", bidID, err)
	}

	if in.BuyerID != nil {
		bid.BuyerID = *in.BuyerID
	}
	if in.SellerID != nil {
		bid.SellerID = *in.SellerID
	}
	if in.ContactName != nil {
		bid.ContactName = *in.ContactName
	}
	if in.ScheduledAt != nil {
		bid.ScheduledAt = *in.ScheduledAt
	}
	if in.Details != nil {
		bid.Details = in.Details
	}
	bid.TotalBid = in.TotalBid

	var requested models.BidStatus
	explicit := in.Status != nil && strings.TrimSpace(*in.Status) != ""
	if explicit {
		requested, err = models.ParseStatus(*in.Status)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: %w - %v", biderrors.ErrValidation, err)
		}
		if !bid.Status.CanTransitionTo(requested) {
			return models.Bid{}, fmt.Errorf("service: %w - %s to %s", biderrors.ErrInvalidTransition, bid.Status, requested)
		}
		bid.Status = requested
	}
	bid.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}

	switch {
	case explicit && requested == models.StatusApproved:
		s.decrementInventory(updated)
		s.notifyPair(updated, notifier.EventBuyerOrderApproved, notifier.EventSellerOrderApproved)
	case explicit && requested == models.StatusDenied:
		s.notifyPair(updated, notifier.EventBuyerOrderDeclined, notifier.EventSellerOrderDeclined)
	default:
		s.notifyPair(updated, notifier.EventBuyerOrderEdited, notifier.EventSellerOrderEdited)
	}

	return updated, nil
}

// Delete removes a bid and dispatches the cancelled notification pair.
// Inventory already decremented by an earlier approval is not restored.
func (s *BidService) Delete(bidID string) error {
	if bidID == "" {
		return fmt.Errorf("service: %w - empty bid ID", biderrors.ErrValidation)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return fmt.Errorf("service: failed to fetch bid %s for delete: %w", bidID, err)
	}

	if err := s.repo.DeleteBid(bidID); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}

	s.notifyPair(bid, notifier.EventBuyerOrderCancelled, notifier.EventSellerOrderCancelled)

	return nil
}

// decrementInventory subtracts each category's bidQuantity from the seller's
// item stock. The repository performs the read-modify-write atomically per
// item. Failures are logged and do not unwind the already-committed bid
// update.
func (s *BidService) decrementInventory(bid models.Bid) {
	deltas := make(map[string]int, len(bid.Details))
	for category, line := range bid.Details {
		deltas[category] = line.BidQuantity
	}

	if _, err := s.repo.DecrementItemStock(bid.SellerID, deltas); err != nil {
		utils.Error("failed to decrement item stock on approval", map[string]any{
			"bid_id":    bid.BidID,
			"seller_id": bid.SellerID,
			"error":     err.Error(),
		})
	}
}

// notifyPair resolves both parties and dispatches the buyer- and
// seller-facing events. A failed party lookup skips notification; it never
// affects the operation's outcome.
func (s *BidService) notifyPair(bid models.Bid, buyerEvent, sellerEvent string) {
	buyer, err := s.repo.GetParty(bid.BuyerID)
	if err != nil {
		utils.Warn("skipping notifications, buyer lookup failed", map[string]any{
			"bid_id":   bid.BidID,
			"buyer_id": bid.BuyerID,
			"error":    err.Error(),
		})
		return
	}
	seller, err := s.repo.GetParty(bid.SellerID)
	if err != nil {
		utils.Warn("skipping notifications, seller lookup failed", map[string]any{
			"bid_id":    bid.BidID,
			"seller_id": bid.SellerID,
			"error":     err.Error(),
		})
		return
	}

	s.dispatcher.Dispatch(buyerEvent, buyer, seller)
	s.dispatcher.Dispatch(sellerEvent, buyer, seller)
}
