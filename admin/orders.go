package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/models/enum"
	"sitara.io/store/query"
)

func (r *repository) Orders(ctx context.Context, status enum.OrderStatus) ([]*models.Order, error) {
	cacheKey := "admin-orders"
	if status != "" {
		cacheKey = "admin-orders?status=" + string(status)
	}

	var orders []*models.Order
	if r.cache.Get(ctx, cacheKey, &orders) {
		return orders, nil
	}

	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	if err := r.gw.Get(ctx, "/admin/orders", q, &orders); err != nil {
		r.logger.Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, orders, query.ListTTL)
	return orders, nil
}

func (r *repository) Order(ctx context.Context, id int) (*models.Order, error) {
	cacheKey := fmt.Sprintf("order:%d", id)

	var order models.Order
	if r.cache.Get(ctx, cacheKey, &order) {
		return &order, nil
	}

	if err := r.gw.Get(ctx, "/admin/orders/"+strconv.Itoa(id), nil, &order); err != nil {
		r.logger.Error("failed to get order", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, order, query.ListTTL)
	return &order, nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, &gateway.ValidationError{Fields: map[string][]string{
			"status": {"unknown order status"},
		}}
	}

	var order models.Order
	body := map[string]enum.OrderStatus{"status": status}
	if err := r.gw.Put(ctx, "/admin/orders/"+strconv.Itoa(id), body, &order); err != nil {
		r.logger.Error("failed to update order status",
			zap.Int("id", id), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, "order:"+strconv.Itoa(id))
	r.cache.InvalidatePrefix(ctx, "admin-orders")
	return &order, nil
}
