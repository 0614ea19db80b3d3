package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bid-exchange/internal/biderrors"
	model "bid-exchange/internal/models"
	"bid-exchange/utils"
)

// GormRepo is a postgres-backed implementation of ExchangeDB
type GormRepo struct {
	db *gorm.DB
}

// OpenPostgres connects to postgres and migrates the bid, item and party tables
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&model.Bid{}, &model.Item{}, &model.Party{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// NewGormRepo creates a repository over an open gorm connection
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// CreateBid stores a new bid and assigns its ID
func (r *GormRepo) CreateBid(bid model.Bid) (model.Bid, error) {
	if bid.BuyerID == "" || bid.SellerID == "" {
		return model.Bid{}, fmt.Errorf("create bid: missing buyer or seller: %w", biderrors.ErrValidation)
	}

	bid.BidID = utils.GenerateID()
	if err := r.db.Create(&bid).Error; err != nil {
		return model.Bid{}, fmt.Errorf("create bid: %w: %w", biderrors.ErrPersistence, err)
	}
	return bid, nil
}

// ListBids returns all bids, unfiltered
func (r *GormRepo) ListBids() ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("list bids: %w: %w", biderrors.ErrPersistence, err)
	}
	return bids, nil
}

// ListBidsByBuyer returns all bids placed by a buyer
func (r *GormRepo) ListBidsByBuyer(buyerID string) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("buyer_id = ?", buyerID).Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("list bids for buyer %s: %w: %w", buyerID, biderrors.ErrPersistence, err)
	}
	return bids, nil
}

// GetBid returns a single bid by ID
func (r *GormRepo) GetBid(bidID string) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("bid_id = ?", bidID).First(&bid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w: %w", bidID, biderrors.ErrPersistence, err)
	}
	return bid, nil
}

// UpdateBid replaces a stored bid
func (r *GormRepo) UpdateBid(bid model.Bid) (model.Bid, error) {
	res := r.db.Model(&model.Bid{}).
		Where("bid_id = ?", bid.BidID).
		Select("*").Omit("bid_id", "created_at").
		Updates(&bid)
	if res.Error != nil {
		return model.Bid{}, fmt.Errorf("update bid %s: %w: %w", bid.BidID, biderrors.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, biderrors.ErrBidNotFound)
	}
	return bid, nil
}

// DeleteBid removes a bid from the store
func (r *GormRepo) DeleteBid(bidID string) error {
	res := r.db.Where("bid_id = ?", bidID).Delete(&model.Bid{})
	if res.Error != nil {
		return fmt.Errorf("delete bid %s: %w: %w", bidID, biderrors.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	return nil
}

// GetItemBySeller returns the inventory item owned by a seller
func (r *GormRepo) GetItemBySeller(sellerID string) (model.Item, error) {
	var item model.Item
	err := r.db.Where("seller_id = ?", sellerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, fmt.Errorf("get item for seller %s: %w", sellerID, biderrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item for seller %s: %w: %w", sellerID, biderrors.ErrPersistence, err)
	}
	return item, nil
}

// DecrementItemStock subtracts the given per-category quantities from the
// seller's item inside a transaction holding a FOR UPDATE row lock, so
// concurrent approvals against the same item serialize instead of losing
// updates. Category keys absent from the item are skipped.
func (r *GormRepo) DecrementItemStock(sellerID string, deltas map[string]int) (model.Item, error) {
	var item model.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("seller_id = ?", sellerID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("decrement stock for seller %s: %w", sellerID, biderrors.ErrItemNotFound)
		}
		if err != nil {
			return fmt.Errorf("decrement stock for seller %s: %w: %w", sellerID, biderrors.ErrPersistence, err)
		}

		for category, qty := range deltas {
			line, ok := item.Details[category]
			if !ok {
				continue
			}
			line.Quantity -= qty
			item.Details[category] = line
		}
		item.UpdatedAt = time.Now().UTC()

		return tx.Model(&model.Item{}).
			Where("item_id = ?", item.ItemID).
			Updates(map[string]any{"details": item.Details, "updated_at": item.UpdatedAt}).Error
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// GetParty returns a marketplace participant by ID
func (r *GormRepo) GetParty(partyID string) (model.Party, error) {
	var party model.Party
	err := r.db.Where("party_id = ?", partyID).First(&party).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Party{}, fmt.Errorf("get party %s: %w", partyID, biderrors.ErrPartyNotFound)
	}
	if err != nil {
		return model.Party{}, fmt.Errorf("get party %s: %w: %w", partyID, biderrors.ErrPersistence, err)
	}
	return party, nil
}
