package repository

import (
	"fmt"
	"sync"
	"time"

	"bid-exchange/internal/biderrors"
	model "bid-exchange/internal/models"
	"bid-exchange/utils"
)

// ExchangeDB defines the bid, item and party storage interface for the
// marketplace
type ExchangeDB interface {
	CreateBid(bid model.Bid) (model.Bid, error)
	ListBids() ([]model.Bid, error)
	ListBidsByBuyer(buyerID string) ([]model.Bid, error)
	GetBid(bidID string) (model.Bid, error)
	UpdateBid(bid model.Bid) (model.Bid, error)
	DeleteBid(bidID string) error
	GetItemBySeller(sellerID string) (model.Item, error)
	DecrementItemStock(sellerID string, deltas map[string]int) (model.Item, error)
	GetParty(partyID string) (model.Party, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of ExchangeDB
type MemoryRepo struct {
	mu      sync.RWMutex
	bids    map[string]model.Bid   // key: bidID -> value: bid
	items   map[string]model.Item  // key: sellerID -> value: item
	parties map[string]model.Party // key: partyID -> value: party
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:    make(map[string]model.Bid),
		items:   make(map[string]model.Item),
		parties: make(map[string]model.Party),
	}
}

// CreateBid stores a new bid and assigns its ID
func (r *MemoryRepo) CreateBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.BuyerID == "" || bid.SellerID == "" {
		return model.Bid{}, fmt.Errorf("create bid: missing buyer or seller: %w", biderrors.ErrValidation)
	}

	bid.BidID = utils.GenerateID()
	bid.Details = cloneBidDetails(bid.Details)
	r.bids[bid.BidID] = bid
	return bid, nil
}

// ListBids returns all bids, unfiltered
func (r *MemoryRepo) ListBids() ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		b.Details = cloneBidDetails(b.Details)
		bids = append(bids, b)
	}
	return bids, nil
}

// ListBidsByBuyer returns all bids placed by a buyer
func (r *MemoryRepo) ListBidsByBuyer(buyerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.BuyerID == buyerID {
			b.Details = cloneBidDetails(b.Details)
			bids = append(bids, b)
		}
	}
	return bids, nil
}

// GetBid returns a single bid by ID
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	bid.Details = cloneBidDetails(bid.Details)
	return bid, nil
}

// UpdateBid replaces a stored bid
func (r *MemoryRepo) UpdateBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.BidID]; !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, biderrors.ErrBidNotFound)
	}
	bid.Details = cloneBidDetails(bid.Details)
	r.bids[bid.BidID] = bid
	return bid, nil
}

// DeleteBid removes a bid from the store
func (r *MemoryRepo) DeleteBid(bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bidID]; !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	delete(r.bids, bidID)
	return nil
}

// GetItemBySeller returns the inventory item owned by a seller
func (r *MemoryRepo) GetItemBySeller(sellerID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[sellerID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item for seller %s: %w", sellerID, biderrors.ErrItemNotFound)
	}
	item.Details = cloneItemDetails(item.Details)
	return item, nil
}

// DecrementItemStock subtracts the given per-category quantities from the
// seller's item. The read-modify-write runs under the repo's write lock, so
// concurrent approvals against the same item cannot lose updates. Category
// keys absent from the item are skipped. Quantities are not floored at zero.
func (r *MemoryRepo) DecrementItemStock(sellerID string, deltas map[string]int) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[sellerID]
	if !ok {
		return model.Item{}, fmt.Errorf("decrement stock for seller %s: %w", sellerID, biderrors.ErrItemNotFound)
	}

	details := cloneItemDetails(item.Details)
	for category, qty := range deltas {
		line, ok := details[category]
		if !ok {
			continue
		}
		line.Quantity -= qty
		details[category] = line
	}
	item.Details = details
	item.UpdatedAt = time.Now().UTC()
	r.items[sellerID] = item

	item.Details = cloneItemDetails(item.Details)
	return item, nil
}

// GetParty returns a marketplace participant by ID
func (r *MemoryRepo) GetParty(partyID string) (model.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	party, ok := r.parties[partyID]
	if !ok {
		return model.Party{}, fmt.Errorf("get party %s: %w", partyID, biderrors.ErrPartyNotFound)
	}
	return party, nil
}

// AddItem seeds a seller's inventory item. Intended for startup seeding and tests.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.Details = cloneItemDetails(item.Details)
	r.items[item.SellerID] = item
}

// AddParty seeds a marketplace participant. Intended for startup seeding and tests.
func (r *MemoryRepo) AddParty(party model.Party) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parties[party.PartyID] = party
}

func cloneBidDetails(d model.BidDetails) model.BidDetails {
	if d == nil {
		return nil
	}
	out := make(model.BidDetails, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func cloneItemDetails(d model.ItemDetails) model.ItemDetails {
	if d == nil {
		return nil
	}
	out := make(model.ItemDetails, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
