// services/hal/worker_test.go
package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedAdaptor struct {
	id         string
	after      time.Duration
	notReadyFS int // Collect returns ErrNotReady this many times first
	err        error
	collects   int
}

func (a *scriptedAdaptor) ID() string              { return a.id }
func (a *scriptedAdaptor) Capabilities() []CapInfo { return nil }
func (a *scriptedAdaptor) Trigger(context.Context) (time.Duration, error) {
	return a.after, nil
}
func (a *scriptedAdaptor) Collect(context.Context) (Sample, error) {
	a.collects++
	if a.collects <= a.notReadyFS {
		return nil, ErrNotReady
	}
	if a.err != nil {
		return nil, a.err
	}
	return Sample{{Kind: "temperature"}}, nil
}
func (a *scriptedAdaptor) Control(string, string, any) (any, error) { return nil, ErrUnsupported }

func recvResult(t *testing.T, ch <-chan Result, d time.Duration) Result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(d):
		t.Fatal("timed out waiting for result")
		return Result{}
	}
}

func TestWorker_TriggerCollectRound(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := make(chan Result, 4)
	w := NewWorker(WorkerConfig{RetryBackoff: 5 * time.Millisecond}, sink)
	w.Start(ctx)

	ad := &scriptedAdaptor{id: "dht0", after: 10 * time.Millisecond}
	if !w.Submit(MeasureReq{ID: ad.id, Adaptor: ad}) {
		t.Fatal("submit refused")
	}

	r := recvResult(t, sink, time.Second)
	if r.Err != nil || len(r.Sample) != 1 {
		t.Fatalf("result = %+v", r)
	}
}

func TestWorker_NotReadyRetriesThenSucceeds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := make(chan Result, 4)
	w := NewWorker(WorkerConfig{RetryBackoff: 2 * time.Millisecond, MaxRetries: 3}, sink)
	w.Start(ctx)

	ad := &scriptedAdaptor{id: "dht0", notReadyFS: 2}
	w.Submit(MeasureReq{ID: ad.id, Adaptor: ad})

	r := recvResult(t, sink, time.Second)
	if r.Err != nil {
		t.Fatalf("result err = %v", r.Err)
	}
	if ad.collects != 3 {
		t.Fatalf("collects = %d (want 3)", ad.collects)
	}
}

func TestWorker_DriverErrorSurfaced(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := make(chan Result, 4)
	w := NewWorker(WorkerConfig{}, sink)
	w.Start(ctx)

	wantErr := errors.New("dht: checksum mismatch")
	ad := &scriptedAdaptor{id: "dht0", err: wantErr}
	w.Submit(MeasureReq{ID: ad.id, Adaptor: ad})

	r := recvResult(t, sink, time.Second)
	if !errors.Is(r.Err, wantErr) {
		t.Fatalf("result err = %v", r.Err)
	}
	if ad.collects != 1 {
		t.Fatalf("driver error retried: %d collects", ad.collects)
	}
}

func TestWorker_DuplicateSubmitCoalesced(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := make(chan Result, 4)
	w := NewWorker(WorkerConfig{}, sink)
	w.Start(ctx)

	ad := &scriptedAdaptor{id: "dht0", after: 30 * time.Millisecond}
	w.Submit(MeasureReq{ID: ad.id, Adaptor: ad})
	w.Submit(MeasureReq{ID: ad.id, Adaptor: ad})

	recvResult(t, sink, time.Second)
	select {
	case r := <-sink:
		t.Fatalf("second result for coalesced submit: %+v", r)
	case <-time.After(60 * time.Millisecond):
	}
	if ad.collects != 1 {
		t.Fatalf("collects = %d (want 1)", ad.collects)
	}
}
