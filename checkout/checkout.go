// Package checkout collects delivery and payment details, validates them
// client side, submits the order built from the cart and clears the cart
// only once the server confirms.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitara.io/store/cart"
	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
)

var (
	// ErrCartEmpty deflects checkout entered with an empty cart back to the
	// cart view; an empty order is never submitted.
	ErrCartEmpty = errors.New("checkout: cart is empty")

	// ErrSubmitInFlight rejects a second submission while one is
	// outstanding, so a double click cannot create two orders.
	ErrSubmitInFlight = errors.New("checkout: submission already in flight")
)

// Form is the delivery and payment input. Name, phone and address are
// mandatory; email and notes are optional; the payment method defaults to
// cash on delivery.
type Form struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   enum.PaymentMethod
	Notes           string
}

// Validate checks the form before any network call. Failures come back
// field-keyed so the form can render them inline.
func (f *Form) Validate() *gateway.ValidationError {
	fields := map[string][]string{}
	if strings.TrimSpace(f.CustomerName) == "" {
		fields["customer_name"] = append(fields["customer_name"], "name is required")
	}
	if strings.TrimSpace(f.CustomerPhone) == "" {
		fields["customer_phone"] = append(fields["customer_phone"], "phone is required")
	}
	if strings.TrimSpace(f.CustomerAddress) == "" {
		fields["customer_address"] = append(fields["customer_address"], "address is required")
	}
	if f.PaymentMethod != "" && !f.PaymentMethod.Valid() {
		fields["payment_method"] = append(fields["payment_method"], "unknown payment method")
	}
	if len(fields) == 0 {
		return nil
	}
	return &gateway.ValidationError{Message: "please fill all required fields", Fields: fields}
}

// Flow is the checkout state machine for one browsing session.
type Flow struct {
	gw        *gateway.Client
	cartStore *cart.Store
	logger    *zap.Logger

	mu        sync.Mutex
	inFlight  bool
	confirmed bool
	idemKey   string
}

func NewFlow(gw *gateway.Client, cartStore *cart.Store, logger *zap.Logger) *Flow {
	return &Flow{gw: gw, cartStore: cartStore, logger: logger}
}

// Submit validates the form, builds the order payload from the current cart
// contents and posts it to the order-creation endpoint exactly once. On
// success the cart is cleared and the flow transitions to confirmed; on any
// failure cart and form state remain untouched so the user can retry.
//
// Each draft carries an Idempotency-Key minted on its first submission and
// reused verbatim on manual retries, so a server honoring the header can
// collapse accidental duplicates.
func (f *Flow) Submit(ctx context.Context, form Form) error {
	lines := f.cartStore.Lines()
	if len(lines) == 0 {
		return ErrCartEmpty
	}
	if verr := form.Validate(); verr != nil {
		return verr
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.inFlight = true
	if f.idemKey == "" {
		f.idemKey = uuid.NewString()
	}
	key := f.idemKey
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	draft := buildDraft(form, lines)
	if err := f.gw.Post(ctx, "/orders", draft, nil, gateway.WithHeader("Idempotency-Key", key)); err != nil {
		f.logger.Error("order submission failed", zap.Error(err))
		return err
	}

	// Confirmed by the server: the cart is cleared atomically with the
	// transition. A failed persistence write is logged but the order stands.
	if err := f.cartStore.Clear(ctx); err != nil {
		f.logger.Warn("cart clear after order failed", zap.Error(err))
	}

	f.mu.Lock()
	f.confirmed = true
	f.idemKey = ""
	f.mu.Unlock()

	f.logger.Info("order placed", zap.Int("items", len(lines)))
	return nil
}

// Confirmed reports whether the current flow has placed its order. The
// caller decides where to navigate; the flow never does.
func (f *Flow) Confirmed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmed
}

// Reset starts a new draft: confirmation state and idempotency key are
// discarded.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed = false
	f.idemKey = ""
}

func buildDraft(form Form, lines []models.CartLine) models.OrderDraft {
	method := form.PaymentMethod
	if method == "" {
		method = enum.PaymentMethodCashOnDelivery
	}

	items := make([]models.OrderDraftItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderDraftItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Color:     line.Color.Name,
			Price:     line.Price,
		}
	}

	return models.OrderDraft{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		CustomerAddress: form.CustomerAddress,
		PaymentMethod:   method,
		Notes:           form.Notes,
		Items:           items,
	}
}
