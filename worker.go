package storefront

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

type EventProcessor interface {
	ProcessEvent(ctx context.Context, event *models.CartEvent) error
}

// WorkerPool runs consumed cart events through the processor on a fixed set
// of goroutines so a slow handler never backs up the NATS subscription.
type WorkerPool struct {
	tasks     chan *models.CartEvent
	wg        sync.WaitGroup
	logger    *zap.Logger
	processor EventProcessor
}

func NewWorkerPool(size int, processor EventProcessor, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		tasks:     make(chan *models.CartEvent, 1000),
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

	for event := range wp.tasks {
		if err := wp.processor.ProcessEvent(context.Background(), event); err != nil {
			wp.logger.Error("Failed to process cart event",
				zap.Error(err),
				zap.String("event_type", string(event.Type)),
				zap.String("event_id", event.ID))
		}
	}
}

// Submit enqueues an event. Events submitted after Shutdown are dropped.
func (wp *WorkerPool) Submit(_ context.Context, event *models.CartEvent) {
	defer func() {
		if recover() != nil {
			wp.logger.Warn("Dropped cart event after shutdown", zap.String("event_id", event.ID))
		}
	}()
	wp.tasks <- event
}

// Shutdown stops accepting work and waits for in-flight events to finish.
func (wp *WorkerPool) Shutdown() {
	close(wp.tasks)
	wp.wg.Wait()
}
