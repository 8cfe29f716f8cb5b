package admin

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

var categoryListKeys = []string{"admin-categories", "categories"}

func (r *repository) Categories(ctx context.Context, params ListParams) ([]*models.Category, error) {
	var categories []*models.Category
	if !r.cache.Get(ctx, "admin-categories", &categories) {
		if err := r.gw.Get(ctx, "/admin/categories", nil, &categories); err != nil {
			r.logger.Error("failed to list admin categories", zap.Error(err))
			return nil, err
		}
		r.cache.Set(ctx, "admin-categories", categories, query.ListTTL)
	}

	if params.Search == "" {
		return categories, nil
	}
	out := make([]*models.Category, 0, len(categories))
	for _, c := range categories {
		if matchFold(c.Name, params.Search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *repository) CreateCategory(ctx context.Context, form CategoryForm) (*models.Category, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var category models.Category
	if err := r.gw.Post(ctx, "/admin/categories", &form, &category); err != nil {
		r.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, categoryListKeys...)
	return &category, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id int, form CategoryForm) (*models.Category, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var category models.Category
	if err := r.gw.Put(ctx, "/admin/categories/"+strconv.Itoa(id), &form, &category); err != nil {
		r.logger.Error("failed to update category", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, categoryListKeys...)
	return &category, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id int) error {
	if !r.confirmed(ctx, "delete category "+strconv.Itoa(id)) {
		return ErrNotConfirmed
	}

	if err := r.gw.Delete(ctx, "/admin/categories/"+strconv.Itoa(id)); err != nil {
		r.logger.Error("failed to delete category", zap.Int("id", id), zap.Error(err))
		return err
	}

	r.cache.Invalidate(ctx, categoryListKeys...)
	return nil
}
