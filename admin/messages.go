package admin

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"sitara.io/store/models"
	"sitara.io/store/query"
)

func (r *repository) Messages(ctx context.Context, params MessageParams) ([]*models.ContactMessage, error) {
	cacheKey := "admin-messages"
	if params.Status != "" {
		cacheKey = "admin-messages?status=" + string(params.Status)
	}

	var messages []*models.ContactMessage
	if !r.cache.Get(ctx, cacheKey, &messages) {
		q := url.Values{}
		if params.Status != "" {
			q.Set("status", string(params.Status))
		}
		if err := r.gw.Get(ctx, "/admin/messages", q, &messages); err != nil {
			r.logger.Error("failed to list messages", zap.Error(err))
			return nil, err
		}
		r.cache.Set(ctx, cacheKey, messages, query.ListTTL)
	}

	if params.Search == "" {
		return messages, nil
	}
	out := make([]*models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		if matchFold(m.Name, params.Search) || matchFold(m.Email, params.Search) || matchFold(m.Message, params.Search) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *repository) MarkMessageRead(ctx context.Context, id int) error {
	if err := r.gw.Post(ctx, "/admin/messages/"+strconv.Itoa(id)+"/read", nil, nil); err != nil {
		r.logger.Error("failed to mark message read", zap.Int("id", id), zap.Error(err))
		return err
	}

	r.cache.InvalidatePrefix(ctx, "admin-messages")
	return nil
}
