package service

import (
	"context"
	"time"

	"github.com/mrsameer/rag-with-gemini/internal/constant"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
)

// OperationFetcher re-fetches a long-running operation by name.
type OperationFetcher func(ctx context.Context, name string) (*genai.Operation, error)

// ProgressFunc receives fractional progress in [0, 1]. It is a side channel
// only; the poller's outcome is carried by its return values.
type ProgressFunc func(progress float64)

// OperationPoller drives a long-running operation to its terminal state with
// a fixed-interval blocking poll. The interval is deliberately not
// exponential: operations finish in seconds to minutes and callers want
// smooth progress feedback, not minimal request count.
//
// The clock and sleeper are injectable so the protocol is testable without
// waiting on real time.
type OperationPoller struct {
	Interval time.Duration
	Now      func() time.Time
	Sleep    func(ctx context.Context, d time.Duration) error
}

func NewOperationPoller() *OperationPoller {
	return &OperationPoller{
		Interval: constant.OperationPollInterval,
		Now:      time.Now,
		Sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Wait polls op until it reports done or the deadline passes.
//
// Per iteration: when now >= deadline the poll fails with Timeout; otherwise
// progress is reported as min(elapsed/timeout, 0.99), the poller sleeps one
// fixed interval and re-fetches the status. Once done the state is terminal:
// an operation error becomes IngestFailed, success reports progress 1.0.
func (p *OperationPoller) Wait(
	ctx context.Context,
	op *genai.Operation,
	timeout time.Duration,
	fetch OperationFetcher,
	onProgress ProgressFunc,
) (*genai.Operation, error) {
	if onProgress == nil {
		onProgress = func(float64) {}
	}

	start := p.Now()
	deadline := start.Add(timeout)
	current := op

	for !current.Done {
		now := p.Now()
		if !now.Before(deadline) {
			return nil, apperror.Timeout("operation %s did not complete within %s", current.Name, timeout)
		}

		progress := now.Sub(start).Seconds() / timeout.Seconds()
		if progress > 0.99 {
			progress = 0.99
		}
		onProgress(progress)

		if err := p.Sleep(ctx, p.Interval); err != nil {
			return nil, apperror.Wrap(apperror.KindTimeout, "operation polling interrupted", err)
		}

		refetched, err := fetch(ctx, current.Name)
		if err != nil {
			return nil, apperror.RemoteUnavailable("failed to fetch operation status", err)
		}
		current = refetched
	}

	if current.Error != nil {
		return nil, apperror.IngestFailed(current.Error.Message)
	}

	onProgress(1.0)
	return current, nil
}
