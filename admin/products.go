package admin

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

// productListKeys are invalidated by every product mutation: both the admin
// list and the storefront lists, so shoppers see server truth too.
var productListKeys = []string{"admin-products", "products"}

func (r *repository) Products(ctx context.Context, params ListParams) ([]*models.Product, error) {
	var products []*models.Product
	if !r.cache.Get(ctx, "admin-products", &products) {
		if err := r.gw.Get(ctx, "/admin/products", nil, &products); err != nil {
			r.logger.Error("failed to list admin products", zap.Error(err))
			return nil, err
		}
		r.cache.Set(ctx, "admin-products", products, query.ListTTL)
	}

	if params.Search == "" {
		return products, nil
	}
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if matchFold(p.Name, params.Search) || matchFold(p.SKU, params.Search) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *repository) CreateProduct(ctx context.Context, form ProductForm) (*models.Product, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var product models.Product
	if err := r.gw.Post(ctx, "/admin/products", &form, &product); err != nil {
		r.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, productListKeys...)
	r.cache.InvalidatePrefix(ctx, "products?")
	return &product, nil
}

func (r *repository) UpdateProduct(ctx context.Context, id int, form ProductForm) (*models.Product, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var product models.Product
	if err := r.gw.Put(ctx, "/admin/products/"+strconv.Itoa(id), &form, &product); err != nil {
		r.logger.Error("failed to update product", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, append([]string{"product:" + strconv.Itoa(id)}, productListKeys...)...)
	r.cache.InvalidatePrefix(ctx, "products?")
	return &product, nil
}

func (r *repository) DeleteProduct(ctx context.Context, id int) error {
	if !r.confirmed(ctx, "delete product "+strconv.Itoa(id)) {
		return ErrNotConfirmed
	}

	if err := r.gw.Delete(ctx, "/admin/products/"+strconv.Itoa(id)); err != nil {
		r.logger.Error("failed to delete product", zap.Int("id", id), zap.Error(err))
		return err
	}

	r.cache.Invalidate(ctx, append([]string{"product:" + strconv.Itoa(id)}, productListKeys...)...)
	r.cache.InvalidatePrefix(ctx, "products?")
	return nil
}
