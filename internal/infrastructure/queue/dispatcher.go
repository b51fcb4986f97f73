// Package queue provides the asynchronous notification dispatcher. It
// fans notifications out to a fixed pool of workers, sharding by
// recipient so notifications to the same address are delivered in order.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/api/metrics"
	"github.com/jobhive/backend/internal/core/ports"
)

const (
	defaultWorkers   = 4
	workerBufferSize = 64
)

// Dispatcher implements ports.NotificationDispatcher over a sharded
// worker pool. Delivery failures are logged and counted, never surfaced
// to the enqueueing request.
type Dispatcher struct {
	mailer  ports.Mailer
	logger  zerolog.Logger
	workers []chan ports.Notification
	wg      sync.WaitGroup
}

func NewDispatcher(mailer ports.Mailer, workers int, logger zerolog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	d := &Dispatcher{
		mailer:  mailer,
		logger:  logger,
		workers: make([]chan ports.Notification, workers),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, workerBufferSize)
	}
	return d
}

// Start launches the worker goroutines. Workers drain their channels and
// exit when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.run(ctx, i, ch)
	}
}

// Wait blocks until all workers have exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue routes the notification to the worker owning the recipient's
// shard. Blocks only when that worker's buffer is full.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	idx := shardFor(n.To, len(d.workers))
	d.workers[idx] <- n
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

func (d *Dispatcher) run(ctx context.Context, id int, ch chan ports.Notification) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-ch:
			metrics.NotificationQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.mailer.Send(ctx, n); err != nil {
				metrics.NotificationsTotal.WithLabelValues("error").Inc()
				d.logger.Error().
					Err(err).
					Str("to", n.To).
					Str("subject", n.Subject).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		}
	}
}

func shardFor(key string, buckets int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(buckets))
}
