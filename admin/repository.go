// Package admin is the back-office: uniform create/read/update/delete over
// the server-owned entities, reached through the API gateway client. Every
// mutation invalidates the list queries it touches; every delete asks for
// explicit confirmation before firing.
package admin

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
	"sitara.io/store/query"
)

// ErrNotConfirmed is returned when the confirmation step declines a delete;
// no request is fired.
var ErrNotConfirmed = errors.New("admin: deletion not confirmed")

// ConfirmFunc asks the user to confirm a destructive action. Returning false
// aborts it.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// ListParams narrows an admin listing. Search filters client side.
type ListParams struct {
	Search string
}

// MessageParams narrows the messages listing.
type MessageParams struct {
	Status enum.MessageStatus
	Search string
}

var _ Repository = (*repository)(nil)

type Repository interface {
	Products(ctx context.Context, params ListParams) ([]*models.Product, error)
	CreateProduct(ctx context.Context, form ProductForm) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, form ProductForm) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	Categories(ctx context.Context, params ListParams) ([]*models.Category, error)
	CreateCategory(ctx context.Context, form CategoryForm) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, form CategoryForm) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	Orders(ctx context.Context, status enum.OrderStatus) ([]*models.Order, error)
	Order(ctx context.Context, id int) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error)

	Customers(ctx context.Context, params ListParams) ([]*models.Customer, error)
	Customer(ctx context.Context, id int) (*models.Customer, error)

	Messages(ctx context.Context, params MessageParams) ([]*models.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int) error

	Notifications(ctx context.Context) ([]*models.Notification, error)
	UnreadNotifications(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int) error
	MarkAllNotificationsRead(ctx context.Context) error

	Settings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, form SettingsForm) (*models.SiteSettings, error)

	Reports(ctx context.Context) (*models.ReportData, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type repository struct {
	gw      *gateway.Client
	cache   *query.Cache
	confirm ConfirmFunc
	logger  *zap.Logger
}

// NewRepository builds the back-office repository. confirm may be nil, in
// which case every delete is refused; destructive actions require an
// explicit confirmation path.
func NewRepository(gw *gateway.Client, cache *query.Cache, confirm ConfirmFunc, logger *zap.Logger) Repository {
	return &repository{gw: gw, cache: cache, confirm: confirm, logger: logger}
}

// confirmed runs the confirmation step for a destructive action.
func (r *repository) confirmed(ctx context.Context, prompt string) bool {
	return r.confirm != nil && r.confirm(ctx, prompt)
}

// matchFold is the shared case-insensitive client-side text filter.
func matchFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
