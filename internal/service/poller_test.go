package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// fakeClock advances only when the poller sleeps, so tests never wait on real
// time.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.now = c.now.Add(d)
	return nil
}

func newTestPoller(clock *fakeClock) *OperationPoller {
	return &OperationPoller{
		Interval: 3 * time.Second,
		Now:      clock.Now,
		Sleep:    clock.Sleep,
	}
}

func TestPollerWaitCompletesAfterTwoPolls(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	poller := newTestPoller(clock)

	fetches := 0
	fetch := func(ctx context.Context, name string) (*genai.Operation, error) {
		fetches++
		op := &genai.Operation{Name: name}
		if fetches >= 2 {
			op.Done = true
			op.Response = &genai.OperationResponse{Document: &genai.Document{Name: "fileSearchStores/s/documents/d"}}
		}
		return op, nil
	}

	var progress []float64
	onProgress := func(p float64) { progress = append(progress, p) }

	op := &genai.Operation{Name: "operations/op-1"}
	final, err := poller.Wait(context.Background(), op, 300*time.Second, fetch, onProgress)

	require.NoError(t, err)
	assert.True(t, final.Done)
	assert.Equal(t, 2, fetches)

	require.NotEmpty(t, progress)
	assert.Equal(t, 1.0, progress[len(progress)-1], "terminal progress must be exactly 1.0")
	for _, p := range progress[:len(progress)-1] {
		assert.Less(t, p, 1.0, "intermediate progress must stay below 1.0")
	}
}

func TestPollerWaitTimesOutAtDeadline(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	poller := newTestPoller(clock)

	fetch := func(ctx context.Context, name string) (*genai.Operation, error) {
		return &genai.Operation{Name: name}, nil
	}

	var progress []float64
	start := clock.now
	op := &genai.Operation{Name: "operations/op-slow"}
	_, err := poller.Wait(context.Background(), op, 5*time.Second, fetch, func(p float64) {
		progress = append(progress, p)
	})

	require.Error(t, err)
	assert.Equal(t, apperror.KindTimeout, apperror.KindOf(err))
	assert.GreaterOrEqual(t, clock.now.Sub(start), 5*time.Second, "timeout must never fire before the deadline")
	for _, p := range progress {
		assert.LessOrEqual(t, p, 0.99, "pre-completion progress is capped at 0.99")
	}
}

func TestPollerWaitOperationError(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	poller := newTestPoller(clock)

	fetch := func(ctx context.Context, name string) (*genai.Operation, error) {
		return &genai.Operation{
			Name:  name,
			Done:  true,
			Error: &genai.Status{Code: 13, Message: "indexing crashed"},
		}, nil
	}

	op := &genai.Operation{Name: "operations/op-err"}
	_, err := poller.Wait(context.Background(), op, 300*time.Second, fetch, nil)

	require.Error(t, err)
	assert.Equal(t, apperror.KindIngestFailed, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "indexing crashed")
}

func TestPollerWaitAlreadyDone(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	poller := newTestPoller(clock)

	fetch := func(ctx context.Context, name string) (*genai.Operation, error) {
		t.Fatal("fetch must not be called for an already-done operation")
		return nil, nil
	}

	var progress []float64
	op := &genai.Operation{Name: "operations/op-done", Done: true}
	final, err := poller.Wait(context.Background(), op, 300*time.Second, fetch, func(p float64) {
		progress = append(progress, p)
	})

	require.NoError(t, err)
	assert.True(t, final.Done)
	assert.Equal(t, []float64{1.0}, progress)
}
