// Package event tracks which backend events have already been applied so a
// redelivered event is a no-op.
package event

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sitara.io/store/driver"
)

// markerTTL bounds how long a processed-event marker is kept; redelivery
// older than this is not expected.
const markerTTL = 24 * time.Hour

var _ Repository = (*repository)(nil)

type Repository interface {
	// MarkProcessed records the event id and reports whether this was the
	// first time it was seen.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

type repository struct {
	kv     driver.KV
	logger *zap.Logger
}

func NewRepository(kv driver.KV, logger *zap.Logger) Repository {
	return &repository{kv: kv, logger: logger}
}

func (r *repository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	first, err := r.kv.SetNX(ctx, "event:"+eventID, "1", markerTTL)
	if err != nil {
		r.logger.Error("failed to mark event processed", zap.String("event_id", eventID), zap.Error(err))
		return false, fmt.Errorf("mark event processed: %w", err)
	}
	return first, nil
}
