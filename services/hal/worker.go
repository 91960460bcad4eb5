// services/hal/worker.go
package hal

import (
	"context"
	"time"
)

// measureWorker serialises trigger/collect rounds across adaptors. One
// goroutine owns all protocol work, so no two adaptors ever drive their pins
// concurrently.
type measureWorker struct {
	cfg  WorkerConfig
	reqQ chan MeasureReq
	sink chan<- Result

	pending  map[string]*collectItem
	collects []*collectItem
	timer    *time.Timer
}

type collectItem struct {
	id      string
	adaptor Adaptor
	due     time.Time
	retries int
}

func NewWorker(cfg WorkerConfig, sink chan<- Result) *measureWorker {
	if cfg.TriggerTimeout <= 0 {
		cfg.TriggerTimeout = 100 * time.Millisecond
	}
	if cfg.CollectTimeout <= 0 {
		cfg.CollectTimeout = 250 * time.Millisecond
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 50 * time.Millisecond
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 4
	}
	if cfg.InputQueueSize <= 0 {
		cfg.InputQueueSize = 16
	}
	return &measureWorker{
		cfg:     cfg,
		reqQ:    make(chan MeasureReq, cfg.InputQueueSize),
		sink:    sink,
		pending: map[string]*collectItem{},
		timer:   time.NewTimer(time.Hour),
	}
}

// Submit enqueues a measurement request. Returns false if the queue is full.
func (w *measureWorker) Submit(req MeasureReq) bool {
	select {
	case w.reqQ <- req:
		return true
	default:
		return false
	}
}

func (w *measureWorker) Start(ctx context.Context) {
	if !w.timer.Stop() {
		drainTimer(w.timer)
	}
	go w.loop(ctx)
}

func (w *measureWorker) loop(ctx context.Context) {
	for {
		w.armTimer()
		select {
		case <-ctx.Done():
			return
		case req := <-w.reqQ:
			if _, ok := w.pending[req.ID]; ok {
				continue // a round for this adaptor is already in flight
			}
			tctx, cancel := context.WithTimeout(ctx, w.cfg.TriggerTimeout)
			after, err := req.Adaptor.Trigger(tctx)
			cancel()
			if err != nil {
				w.emit(Result{ID: req.ID, Err: err})
				continue
			}
			it := &collectItem{id: req.ID, adaptor: req.Adaptor, due: time.Now().Add(after)}
			w.pending[req.ID] = it
			w.collects = append(w.collects, it)
		case <-w.timer.C:
			w.runDue(ctx)
		}
	}
}

func (w *measureWorker) runDue(ctx context.Context) {
	now := time.Now()
	var keep []*collectItem
	for _, it := range w.collects {
		if now.Before(it.due) {
			keep = append(keep, it)
			continue
		}
		cctx, cancel := context.WithTimeout(ctx, w.cfg.CollectTimeout)
		s, err := it.adaptor.Collect(cctx)
		cancel()
		switch {
		case err == nil:
			delete(w.pending, it.id)
			w.emit(Result{ID: it.id, Sample: s})
		case err == ErrNotReady && it.retries < w.cfg.MaxRetries:
			it.retries++
			it.due = now.Add(w.cfg.RetryBackoff)
			keep = append(keep, it)
		default:
			delete(w.pending, it.id)
			w.emit(Result{ID: it.id, Err: err})
		}
	}
	w.collects = keep
}

func (w *measureWorker) armTimer() {
	if !w.timer.Stop() {
		drainTimer(w.timer)
	}
	next := w.minDue()
	if next.IsZero() {
		w.timer.Reset(time.Hour)
		return
	}
	d := time.Until(next)
	if d < 0 {
		d = 0
	}
	w.timer.Reset(d)
}

func (w *measureWorker) emit(r Result) {
	w.sink <- r
}

func (w *measureWorker) minDue() time.Time {
	var min time.Time
	for _, it := range w.collects {
		if min.IsZero() || it.due.Before(min) {
			min = it.due
		}
	}
	return min
}

func drainTimer(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}
