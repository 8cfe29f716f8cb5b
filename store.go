// Package store is a bilingual, Arabic-first storefront client for a
// window-treatments retailer: catalog browsing, a locally persisted cart
// with checkout, and a back-office over the retailer's REST backend. The
// backend owns every entity; this package owns the cart, the session and
// the query cache.
package store

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"sitara.io/store/admin"
	"sitara.io/store/cart"
	"sitara.io/store/catalog"
	"sitara.io/store/checkout"
	"sitara.io/store/event"
	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
	"sitara.io/store/query"
	"sitara.io/store/session"
)

// Storefront is the shopper-facing surface.
type Storefront interface {
	Products(ctx context.Context, params catalog.ListParams) ([]*models.Product, error)
	Product(ctx context.Context, id int) (*models.Product, error)
	Categories(ctx context.Context) ([]*models.Category, error)
	CategoryTree(ctx context.Context) ([]*models.CategoryTree, error)
	Home(ctx context.Context) ([]*models.HomeSection, error)

	CartLines() []models.CartLine
	AddToCart(ctx context.Context, line models.CartLine) error
	RemoveFromCart(ctx context.Context, index int) error
	UpdateCartQuantity(ctx context.Context, index, quantity int) error
	UpdateCartColor(ctx context.Context, index int, color models.ProductColor) error
	ClearCart(ctx context.Context) error
	CartTotalItems() int
	CartTotalPrice() float64

	Checkout(ctx context.Context, form checkout.Form) error
	CheckoutConfirmed() bool
	ResetCheckout()

	SubmitContact(ctx context.Context, form models.ContactForm) error

	Login(ctx context.Context, email, password string) (*models.AuthSession, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	LoginRedirect() (string, bool)
	Locale(ctx context.Context) string
	SetLocale(ctx context.Context, locale string) error
	Theme(ctx context.Context) enum.Theme
	ToggleTheme(ctx context.Context) (enum.Theme, error)
}

// Service is the whole client: storefront plus back-office.
type Service interface {
	Storefront
	Backoffice

	// Shutdown drains the background event workers.
	Shutdown()
}

type service struct {
	gw         *gateway.Client
	catalog    catalog.Repository
	backoffice admin.Repository
	cartStore  *cart.Store
	flow       *checkout.Flow
	sessions   *session.Manager
	events     event.Repository
	cache      *query.Cache

	eventManager *EventManager
	workerPool   *WorkerPool

	natsConn *nats.Conn
	logger   *zap.Logger
}

// NewService wires the client together. natsConn may be nil, in which case
// cached queries expire by TTL only instead of being invalidated by backend
// events.
func NewService(
	gw *gateway.Client,
	catalogRepo catalog.Repository, backofficeRepo admin.Repository, cartStore *cart.Store,
	flow *checkout.Flow, sessions *session.Manager, events event.Repository, cache *query.Cache,
	natsConn *nats.Conn,
	logger *zap.Logger) Service {
	s := &service{
		gw:         gw,
		catalog:    catalogRepo,
		backoffice: backofficeRepo,
		cartStore:  cartStore,
		flow:       flow,
		sessions:   sessions,
		events:     events,
		cache:      cache,
		natsConn:   natsConn,
		logger:     logger,
	}
	s.eventManager = NewEventManager(natsConn, logger)
	s.workerPool = NewWorkerPool(4, s, logger)
	s.registerEventHandlers()

	if natsConn != nil {
		if err := s.eventManager.SubscribeToEvents(s.workerPool); err != nil {
			logger.Error("Failed to subscribe to backend events", zap.Error(err))
		}
	}

	return s
}

func (s *service) Products(ctx context.Context, params catalog.ListParams) ([]*models.Product, error) {
	return s.catalog.Products(ctx, params)
}

func (s *service) Product(ctx context.Context, id int) (*models.Product, error) {
	return s.catalog.Product(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.catalog.Categories(ctx)
}

func (s *service) CategoryTree(ctx context.Context) ([]*models.CategoryTree, error) {
	return s.catalog.CategoryTree(ctx)
}

func (s *service) Home(ctx context.Context) ([]*models.HomeSection, error) {
	return s.catalog.Home(ctx)
}

func (s *service) CartLines() []models.CartLine {
	return s.cartStore.Lines()
}

func (s *service) AddToCart(ctx context.Context, line models.CartLine) error {
	return s.cartStore.Add(ctx, line)
}

func (s *service) RemoveFromCart(ctx context.Context, index int) error {
	return s.cartStore.Remove(ctx, index)
}

func (s *service) UpdateCartQuantity(ctx context.Context, index, quantity int) error {
	return s.cartStore.UpdateQuantity(ctx, index, quantity)
}

func (s *service) UpdateCartColor(ctx context.Context, index int, color models.ProductColor) error {
	return s.cartStore.UpdateColor(ctx, index, color)
}

func (s *service) ClearCart(ctx context.Context) error {
	return s.cartStore.Clear(ctx)
}

func (s *service) CartTotalItems() int {
	return s.cartStore.TotalItems()
}

func (s *service) CartTotalPrice() float64 {
	return s.cartStore.TotalPrice()
}

func (s *service) Checkout(ctx context.Context, form checkout.Form) error {
	return s.flow.Submit(ctx, form)
}

func (s *service) CheckoutConfirmed() bool {
	return s.flow.Confirmed()
}

func (s *service) ResetCheckout() {
	s.flow.Reset()
}

func (s *service) Login(ctx context.Context, email, password string) (*models.AuthSession, error) {
	return s.sessions.Login(ctx, email, password)
}

func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *service) CurrentUser(ctx context.Context) *models.User {
	return s.sessions.CurrentUser(ctx)
}

func (s *service) LoginRedirect() (string, bool) {
	return s.sessions.LoginRedirect()
}

func (s *service) Locale(ctx context.Context) string {
	return s.sessions.Locale(ctx)
}

func (s *service) SetLocale(ctx context.Context, locale string) error {
	return s.sessions.SetLocale(ctx, locale)
}

func (s *service) Theme(ctx context.Context) enum.Theme {
	return s.sessions.Theme(ctx)
}

func (s *service) ToggleTheme(ctx context.Context) (enum.Theme, error) {
	return s.sessions.ToggleTheme(ctx)
}

func (s *service) Shutdown() {
	s.workerPool.Shutdown()
}
