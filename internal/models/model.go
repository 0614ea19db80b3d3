package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BidStatus is the lifecycle state of a bid.
type BidStatus string

const (
	StatusPending   BidStatus = "pending"
	StatusApproved  BidStatus = "approved"
	StatusDenied    BidStatus = "denied"
	StatusCancelled BidStatus = "cancelled"
)

// ParseStatus normalizes a caller-supplied status string. Comparison is
// case-insensitive; the empty string maps to pending.
func ParseStatus(s string) (BidStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusPending, nil
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "denied":
		return StatusDenied, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown bid status %q", s)
	}
}

// transitions is consulted before any explicit status change is persisted.
// Approved does not allow re-approval: that would decrement inventory twice.
// Cancelled is terminal.
var transitions = map[BidStatus]map[BidStatus]bool{
	StatusPending: {
		StatusPending:   true,
		StatusApproved:  true,
		StatusDenied:    true,
		StatusCancelled: true,
	},
	StatusApproved: {
		StatusCancelled: true,
	},
	StatusDenied: {
		StatusDenied:    true,
		StatusCancelled: true,
	},
	StatusCancelled: {},
}

// CanTransitionTo reports whether an explicit change from s to next is allowed.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	return transitions[s][next]
}

// BidLine is one category entry in a bid's details payload: how much stock
// the seller listed and how much of it this bid is for.
type BidLine struct {
	Quantity    int `json:"quantity"`
	BidQuantity int `json:"bidQuantity"`
}

// BidDetails maps an item-category key (e.g. "glass") to its bid line.
type BidDetails map[string]BidLine

// Value serializes details as JSON for the SQL store.
func (d BidDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan deserializes details from the SQL store.
func (d *BidDetails) Scan(src any) error {
	b, ok := src.([]byte)
	if !ok {
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("bid details: unsupported scan type %T", src)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, d)
}

// StockLine is one category entry in an item's inventory.
type StockLine struct {
	Quantity int `json:"quantity"`
}

// ItemDetails maps an item-category key to its available stock.
type ItemDetails map[string]StockLine

func (d ItemDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ItemDetails) Scan(src any) error {
	b, ok := src.([]byte)
	if !ok {
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("item details: unsupported scan type %T", src)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, d)
}

// Bid represents a buyer's structured offer to a seller for specified item
// quantities at a price.
type Bid struct {
	BidID       string     `json:"bid_id" gorm:"column:bid_id;primaryKey"`
	BuyerID     string     `json:"buyer_id" gorm:"column:buyer_id;index"`
	SellerID    string     `json:"seller_id" gorm:"column:seller_id;index"`
	ContactName string     `json:"contact_name" gorm:"column:contact_name"`
	ScheduledAt time.Time  `json:"scheduled_at" gorm:"column:scheduled_at"`
	Details     BidDetails `json:"details" gorm:"column:details;type:jsonb"`
	TotalBid    float64    `json:"total_bid" gorm:"column:total_bid"`
	Status      BidStatus  `json:"status" gorm:"column:status;type:varchar(16)"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// Item represents a seller-owned inventory record with per-category stock.
type Item struct {
	ItemID    string      `json:"item_id" gorm:"column:item_id;primaryKey"`
	SellerID  string      `json:"seller_id" gorm:"column:seller_id;index"`
	Details   ItemDetails `json:"details" gorm:"column:details;type:jsonb"`
	CreatedAt time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"column:updated_at"`
}

// Party is a marketplace participant (buyer or seller) with the contact
// points notifications are delivered to.
type Party struct {
	PartyID     string `json:"party_id" gorm:"column:party_id;primaryKey"`
	Name        string `json:"name" gorm:"column:name"`
	MobileNo    string `json:"mobile_no" gorm:"column:mobile_no"`
	AltMobileNo string `json:"alt_mobile_no" gorm:"column:alt_mobile_no"`
	Email       string `json:"email" gorm:"column:email"`
}

// PhoneNumbers returns the party's reachable numbers, primary first.
func (p Party) PhoneNumbers() []string {
	nums := make([]string, 0, 2)
	if p.MobileNo != "" {
		nums = append(nums, p.MobileNo)
	}
	if p.AltMobileNo != "" {
		nums = append(nums, p.AltMobileNo)
	}
	return nums
}
