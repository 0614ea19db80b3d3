package notifier

import (
	"context"
	"strings"
	"sync"
	"time"

	model "bid-exchange/internal/models"
	"bid-exchange/utils"
)

// GatewayDispatcher renders a template for an event and delivers it through
// the gateway. Dispatch is fire-and-forget: it returns before the send
// completes, every send carries its own deadline, and failures are logged
// and discarded so they can never alter the lifecycle outcome that
// triggered them.
type GatewayDispatcher struct {
	gateway   *Gateway
	templates Templates
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewGatewayDispatcher creates a dispatcher over the given gateway and
// template set.
func NewGatewayDispatcher(gateway *Gateway, templates Templates, timeout time.Duration) *GatewayDispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GatewayDispatcher{
		gateway:   gateway,
		templates: templates,
		timeout:   timeout,
	}
}

// Dispatch sends the notification for event to the buyer- or seller-facing
// side, chosen by the event key prefix. It never blocks the caller.
func (d *GatewayDispatcher) Dispatch(event string, buyer, seller model.Party) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.send(ctx, event, buyer, seller)
	}()
}

// Wait blocks until all in-flight sends have finished. Used on shutdown.
func (d *GatewayDispatcher) Wait() {
	d.wg.Wait()
}

func (d *GatewayDispatcher) send(ctx context.Context, event string, buyer, seller model.Party) {
	tmpl, ok := d.templates[event]
	if !ok {
		utils.Warn("no template for notification event", map[string]any{"event": event})
		return
	}

	target := buyer
	if strings.HasPrefix(event, "seller-") {
		target = seller
	}
	rendered := tmpl.Render(buyer, seller)

	if nums := target.PhoneNumbers(); len(nums) > 0 {
		if err := d.gateway.SendSMS(ctx, rendered.SMS, "", nums, 0); err != nil {
			utils.Error("notification delivery failed", map[string]any{
				"event":   event,
				"channel": "sms",
				"party":   target.PartyID,
				"error":   err.Error(),
			})
		}
	}

	if rendered.EmailSubject != "" && target.Email != "" {
		if err := d.gateway.SendEmail(ctx, rendered.EmailBody, rendered.EmailSubject, "", target.Email); err != nil {
			utils.Error("notification delivery failed", map[string]any{
				"event":   event,
				"channel": "email",
				"party":   target.PartyID,
				"error":   err.Error(),
			})
		}
	}
}
