package admin

import (
	"context"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

func (r *repository) Settings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if r.cache.Get(ctx, "admin-settings", &settings) {
		return &settings, nil
	}

	if err := r.gw.Get(ctx, "/admin/settings", nil, &settings); err != nil {
		r.logger.Error("failed to get settings", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, "admin-settings", settings, query.ListTTL)
	return &settings, nil
}

func (r *repository) UpdateSettings(ctx context.Context, form SettingsForm) (*models.SiteSettings, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var settings models.SiteSettings
	if err := r.gw.Put(ctx, "/admin/settings", &form, &settings); err != nil {
		r.logger.Error("failed to update settings", zap.Error(err))
		return nil, err
	}

	r.cache.Invalidate(ctx, "admin-settings")
	return &settings, nil
}
