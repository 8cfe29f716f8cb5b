package admin

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

func (r *repository) Notifications(ctx context.Context) ([]*models.Notification, error) {
	var notifications []*models.Notification
	if r.cache.Get(ctx, "admin-notifications", &notifications) {
		return notifications, nil
	}

	if err := r.gw.Get(ctx, "/admin/notifications", nil, &notifications); err != nil {
		r.logger.Error("failed to list notifications", zap.Error(err))
		return nil, err
	}

	r.cache.Set(ctx, "admin-notifications", notifications, query.ListTTL)
	return notifications, nil
}

// UnreadNotifications counts notifications without a read timestamp. It
// feeds the navbar badge.
func (r *repository) UnreadNotifications(ctx context.Context) (int, error) {
	notifications, err := r.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, id int) error {
	if err := r.gw.Patch(ctx, "/admin/notifications/"+strconv.Itoa(id)+"/read", nil, nil); err != nil {
		r.logger.Error("failed to mark notification read", zap.Int("id", id), zap.Error(err))
		return err
	}

	r.cache.Invalidate(ctx, "admin-notifications")
	return nil
}

func (r *repository) MarkAllNotificationsRead(ctx context.Context) error {
	if err := r.gw.Post(ctx, "/admin/notifications/mark-all-read", nil, nil); err != nil {
		r.logger.Error("failed to mark all notifications read", zap.Error(err))
		return err
	}

	r.cache.Invalidate(ctx, "admin-notifications")
	return nil
}
