package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"sitara.io/store/models"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []string
}

func (p *countingProcessor) ProcessEvent(ctx context.Context, event *models.BackendEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, event.ID)
	return nil
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func TestWorkerPoolProcessesAllSubmitted(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	processor := &countingProcessor{}
	wp := NewWorkerPool(4, processor, zap.NewNop())

	ctx := context.Background()
	for i := 0; i < 50; i++ {
		wp.Submit(ctx, &models.BackendEvent{ID: "evt", Type: "product.updated"})
	}
	wp.Shutdown()

	assert.Equal(t, 50, processor.count())
}

func TestWorkerPoolShutdownIsClean(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	wp := NewWorkerPool(2, &countingProcessor{}, zap.NewNop())
	wp.Shutdown()
}
