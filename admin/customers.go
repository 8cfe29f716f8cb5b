package admin

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

func (r *repository) Customers(ctx context.Context, params ListParams) ([]*models.Customer, error) {
	var customers []*models.Customer
	if !r.cache.Get(ctx, "admin-customers", &customers) {
		if err := r.gw.Get(ctx, "/admin/customers", nil, &customers); err != nil {
			r.logger.Error("failed to list customers", zap.Error(err))
			return nil, err
		}
		r.cache.Set(ctx, "admin-customers", customers, query.ListTTL)
	}

	if params.Search == "" {
		return customers, nil
	}
	out := make([]*models.Customer, 0, len(customers))
	for _, c := range customers {
		if matchFold(c.Name, params.Search) || matchFold(c.Email, params.Search) || matchFold(c.Phone, params.Search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *repository) Customer(ctx context.Context, id int) (*models.Customer, error) {
	cacheKey := fmt.Sprintf("customer:%d", id)

	var customer models.Customer
	if r.cache.Get(ctx, cacheKey, &customer) {
		return &customer, nil
	}

	if err := r.gw.Get(ctx, "/admin/customers/"+strconv.Itoa(id), nil, &customer); err != nil {
		r.logger.Error("failed to get customer", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, customer, query.ListTTL)
	return &customer, nil
}
