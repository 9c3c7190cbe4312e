package gateway

import (
	"context"
	"log"
	"sync"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

// Checkouter is the slice of the checkout service the gateway drives.
type Checkouter interface {
	Checkout(ctx context.Context) (*domain.CheckoutResult, error)
}

type task struct {
	ctx       context.Context
	onSuccess func(*domain.CheckoutResult)
	onFailure func(error)
}

// Gateway runs checkouts on its own worker pool so callers can fire one off
// and go away; the checkout outlives the request that submitted it. The pool
// is bounded, but concurrent submissions from the same user are not
// deduplicated: two overlapping submits run two checkouts.
type Gateway struct {
	svc   Checkouter
	tasks chan task
	wg    sync.WaitGroup
}

func New(svc Checkouter, workers, queueSize int) *Gateway {
	if workers < 1 {
		workers = 1
	}
	g := &Gateway{
		svc:   svc,
		tasks: make(chan task, queueSize),
	}

	for i := 0; i < workers; i++ {
		g.wg.Add(1)
		go g.worker()
	}

	return g
}

func (g *Gateway) worker() {
	defer g.wg.Done()
	for t := range g.tasks {
		result, err := g.svc.Checkout(t.ctx)
		if err != nil {
			log.Printf("checkout failed in async processing: %v", err)
			if t.onFailure != nil {
				t.onFailure(err)
			}
			continue
		}
		if t.onSuccess != nil {
			t.onSuccess(result)
		}
	}
}

// Submit queues one checkout and returns immediately. The task keeps the
// caller's context values (identity, request id) but sheds its cancellation,
// so tearing down the caller does not abort the checkout. Exactly one of the
// callbacks fires, from a worker goroutine. Submit blocks only when the
// queue is full.
func (g *Gateway) Submit(ctx context.Context, onSuccess func(*domain.CheckoutResult), onFailure func(error)) {
	g.tasks <- task{
		ctx:       context.WithoutCancel(ctx),
		onSuccess: onSuccess,
		onFailure: onFailure,
	}
}

// Close stops accepting new work and waits for in-flight checkouts to finish.
func (g *Gateway) Close() {
	close(g.tasks)
	g.wg.Wait()
}
