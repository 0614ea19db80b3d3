package notifier

import (
	"strings"

	model "bid-exchange/internal/models"
)

// Notification event keys, one pair per lifecycle transition.
const (
	EventBuyerOrderPlaced     = "buyer-order-placed"
	EventSellerOrderPlaced    = "seller-order-placed"
	EventBuyerOrderApproved   = "buyer-order-approved"
	EventSellerOrderApproved  = "seller-order-approved"
	EventBuyerOrderDeclined   = "buyer-order-declined"
	EventSellerOrderDeclined  = "seller-order-declined"
	EventBuyerOrderEdited     = "buyer-order-edited"
	EventSellerOrderEdited    = "seller-order-edited"
	EventBuyerOrderCancelled  = "buyer-order-cancelled"
	EventSellerOrderCancelled = "seller-order-cancelled"
)

// Template holds the channel bodies for one notification event. Placeholders
// {buyerName} and {sellerName} are substituted at send time. EmailSubject
// empty means the event is SMS-only.
type Template struct {
	SMS          string `mapstructure:"sms"`
	EmailSubject string `mapstructure:"email_subject"`
	EmailBody    string `mapstructure:"email_body"`
}

// Templates maps an event key to its message template. The set is injected
// into the dispatcher at construction, it is not ambient state.
type Templates map[string]Template

// Render substitutes the buyer/seller placeholders into the template bodies.
func (t Template) Render(buyer, seller model.Party) Template {
	r := strings.NewReplacer("{buyerName}", buyer.Name, "{sellerName}", seller.Name)
	return Template{
		SMS:          r.Replace(t.SMS),
		EmailSubject: r.Replace(t.EmailSubject),
		EmailBody:    r.Replace(t.EmailBody),
	}
}

// DefaultTemplates returns the built-in message set. Deployments override
// individual entries through configuration.
func DefaultTemplates() Templates {
	return Templates{
		EventBuyerOrderPlaced: {
			SMS:          "Hi {buyerName}, your bid to {sellerName} has been placed.",
			EmailSubject: "Bid placed",
			EmailBody:    "Hi {buyerName}, your bid to {sellerName} has been placed.",
		},
		EventSellerOrderPlaced: {
			SMS: "Hi {sellerName}, {buyerName} has placed a bid on your items.",
		},
		EventBuyerOrderApproved: {
			SMS:          "Hi {buyerName}, {sellerName} has approved your bid.",
			EmailSubject: "Bid approved",
			EmailBody:    "Hi {buyerName}, {sellerName} has approved your bid.",
		},
		EventSellerOrderApproved: {
			SMS: "Hi {sellerName}, you have approved the bid from {buyerName}.",
		},
		EventBuyerOrderDeclined: {
			SMS: "Hi {buyerName}, {sellerName} has declined your bid.",
		},
		EventSellerOrderDeclined: {
			SMS: "Hi {sellerName}, you have declined the bid from {buyerName}.",
		},
		EventBuyerOrderEdited: {
			SMS: "Hi {buyerName}, your bid to {sellerName} has been updated.",
		},
		EventSellerOrderEdited: {
			SMS: "Hi {sellerName}, the bid from {buyerName} has been updated.",
		},
		EventBuyerOrderCancelled: {
			SMS:          "Hi {buyerName}, your bid to {sellerName} has been cancelled.",
			EmailSubject: "Bid cancelled",
			EmailBody:    "Hi {buyerName}, your bid to {sellerName} has been cancelled.",
		},
		EventSellerOrderCancelled: {
			SMS: "Hi {sellerName}, the bid from {buyerName} has been cancelled.",
		},
	}
}

// Merge overlays non-empty overrides onto the receiver and returns the result.
func (t Templates) Merge(overrides Templates) Templates {
	out := make(Templates, len(t))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
