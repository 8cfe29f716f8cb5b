package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"sitara.io/store/models"
)

type EventProcessor interface {
	ProcessEvent(ctx context.Context, event *models.BackendEvent) error
}

// WorkerPool applies backend events off the subscription goroutine so a slow
// invalidation never backs up NATS delivery.
type WorkerPool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	logger    *zap.Logger
	processor EventProcessor
}

func NewWorkerPool(size int, processor EventProcessor, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		tasks:     make(chan func(), 1000),
		logger:    logger,
		processor: processor,
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

func (wp *WorkerPool) Submit(ctx context.Context, event *models.BackendEvent) {
	wp.tasks <- func() {
		if err := wp.processor.ProcessEvent(ctx, event); err != nil {
			wp.logger.Error("Failed to process event",
				zap.Error(err),
				zap.String("event_type", event.Type),
				zap.String("event_id", event.ID))
		}
	}
}

// Shutdown stops accepting work and waits for queued events to finish.
func (wp *WorkerPool) Shutdown() {
	close(wp.tasks)
	wp.wg.Wait()
}
