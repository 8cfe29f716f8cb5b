package store

import (
	"context"

	"sitara.io/store/admin"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
)

// Backoffice is the administrative surface. Naming follows the screens: the
// Admin* listings feed the management tables, the detail and mutation
// methods feed the forms.
type Backoffice interface {
	AdminProducts(ctx context.Context, params admin.ListParams) ([]*models.Product, error)
	CreateProduct(ctx context.Context, form admin.ProductForm) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, form admin.ProductForm) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	AdminCategories(ctx context.Context, params admin.ListParams) ([]*models.Category, error)
	CreateCategory(ctx context.Context, form admin.CategoryForm) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, form admin.CategoryForm) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	AdminOrders(ctx context.Context, status enum.OrderStatus) ([]*models.Order, error)
	OrderDetails(ctx context.Context, id int) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error)

	AdminCustomers(ctx context.Context, params admin.ListParams) ([]*models.Customer, error)
	CustomerDetails(ctx context.Context, id int) (*models.Customer, error)

	AdminMessages(ctx context.Context, params admin.MessageParams) ([]*models.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int) error

	AdminNotifications(ctx context.Context) ([]*models.Notification, error)
	UnreadNotifications(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int) error
	MarkAllNotificationsRead(ctx context.Context) error

	AdminSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, form admin.SettingsForm) (*models.SiteSettings, error)

	AdminReports(ctx context.Context) (*models.ReportData, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

func (s *service) AdminProducts(ctx context.Context, params admin.ListParams) ([]*models.Product, error) {
	return s.backoffice.Products(ctx, params)
}

func (s *service) CreateProduct(ctx context.Context, form admin.ProductForm) (*models.Product, error) {
	return s.backoffice.CreateProduct(ctx, form)
}

func (s *service) UpdateProduct(ctx context.Context, id int, form admin.ProductForm) (*models.Product, error) {
	return s.backoffice.UpdateProduct(ctx, id, form)
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	return s.backoffice.DeleteProduct(ctx, id)
}

func (s *service) AdminCategories(ctx context.Context, params admin.ListParams) ([]*models.Category, error) {
	return s.backoffice.Categories(ctx, params)
}

func (s *service) CreateCategory(ctx context.Context, form admin.CategoryForm) (*models.Category, error) {
	return s.backoffice.CreateCategory(ctx, form)
}

func (s *service) UpdateCategory(ctx context.Context, id int, form admin.CategoryForm) (*models.Category, error) {
	return s.backoffice.UpdateCategory(ctx, id, form)
}

func (s *service) DeleteCategory(ctx context.Context, id int) error {
	return s.backoffice.DeleteCategory(ctx, id)
}

func (s *service) AdminOrders(ctx context.Context, status enum.OrderStatus) ([]*models.Order, error) {
	return s.backoffice.Orders(ctx, status)
}

func (s *service) OrderDetails(ctx context.Context, id int) (*models.Order, error) {
	return s.backoffice.Order(ctx, id)
}

func (s *service) UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error) {
	return s.backoffice.UpdateOrderStatus(ctx, id, status)
}

func (s *service) AdminCustomers(ctx context.Context, params admin.ListParams) ([]*models.Customer, error) {
	return s.backoffice.Customers(ctx, params)
}

func (s *service) CustomerDetails(ctx context.Context, id int) (*models.Customer, error) {
	return s.backoffice.Customer(ctx, id)
}

func (s *service) AdminMessages(ctx context.Context, params admin.MessageParams) ([]*models.ContactMessage, error) {
	return s.backoffice.Messages(ctx, params)
}

func (s *service) MarkMessageRead(ctx context.Context, id int) error {
	return s.backoffice.MarkMessageRead(ctx, id)
}

func (s *service) AdminNotifications(ctx context.Context) ([]*models.Notification, error) {
	return s.backoffice.Notifications(ctx)
}

func (s *service) UnreadNotifications(ctx context.Context) (int, error) {
	return s.backoffice.UnreadNotifications(ctx)
}

func (s *service) MarkNotificationRead(ctx context.Context, id int) error {
	return s.backoffice.MarkNotificationRead(ctx, id)
}

func (s *service) MarkAllNotificationsRead(ctx context.Context) error {
	return s.backoffice.MarkAllNotificationsRead(ctx)
}

func (s *service) AdminSettings(ctx context.Context) (*models.SiteSettings, error) {
	return s.backoffice.Settings(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, form admin.SettingsForm) (*models.SiteSettings, error) {
	return s.backoffice.UpdateSettings(ctx, form)
}

func (s *service) AdminReports(ctx context.Context) (*models.ReportData, error) {
	return s.backoffice.Reports(ctx)
}

func (s *service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.backoffice.DashboardStats(ctx)
}
