package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestMapOrder(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8, 500} {
		got := Map(100, workers, func(i int) int { return i * i })
		if len(got) != 100 {
			t.Fatalf("workers=%d: %d results", workers, len(got))
		}
		for i, v := range got {
			if v != i*i {
				t.Fatalf("workers=%d: result %d = %d, expected %d", workers, i, v, i*i)
			}
		}
	}
}

func TestMapCallsEachIndexOnce(t *testing.T) {
	var calls [64]atomic.Int32
	Map(len(calls), 7, func(i int) struct{} {
		calls[i].Add(1)
		return struct{}{}
	})
	for i := range calls {
		if c := calls[i].Load(); c != 1 {
			t.Errorf("index %d called %d times", i, c)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	if got := Map(0, 4, func(i int) int { return i }); len(got) != 0 {
		t.Errorf("empty range returned %v", got)
	}
}

func TestRun(t *testing.T) {
	var n atomic.Int32
	tasks := make([]func(context.Context) error, 10)
	for i := range tasks {
		tasks[i] = func(context.Context) error { n.Add(1); return nil }
	}
	if err := Run(context.Background(), tasks...); err != nil {
		t.Fatal(err)
	}
	if n.Load() != 10 {
		t.Errorf("ran %d tasks, expected 10", n.Load())
	}
	if err := Run(context.Background()); err != nil {
		t.Errorf("no tasks: %v", err)
	}
}

func TestRunFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
	)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, expected boom", err)
	}
}

func TestWorkers(t *testing.T) {
	if Workers(0) < 1 {
		t.Error("Workers(0) < 1")
	}
	if Workers(5) != 5 {
		t.Error("Workers(5) != 5")
	}
}
