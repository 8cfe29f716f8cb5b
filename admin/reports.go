package admin

import (
	"context"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

func (r *repository) Reports(ctx context.Context) (*models.ReportData, error) {
	var reports models.ReportData
	if r.cache.Get(ctx, "admin-reports", &reports) {
		return &reports, nil
	}

	if err := r.gw.Get(ctx, "/admin/reports", nil, &reports); err != nil {
		r.logger.Error("failed to get reports", zap.Error(err))
		return nil, err
	}

	// Reports tolerate more staleness than entity lists.
	r.cache.Set(ctx, "admin-reports", reports, query.ReportTTL)
	return &reports, nil
}

func (r *repository) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if r.cache.Get(ctx, "admin-stats", &stats) {
		return &stats, nil
	}

	if err := r.gw.Get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		r.logger.Error("failed to get dashboard stats", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, "admin-stats", stats, query.ListTTL)
	return &stats, nil
}
