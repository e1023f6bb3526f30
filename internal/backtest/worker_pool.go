package backtest

import (
	"context"
	"runtime"
	"sync"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// WorkerPool evaluates durations in parallel. Window evaluation is
// order-independent and each duration's accumulator is owned by exactly
// one worker, so no locking is needed beyond the job/result channels.
type WorkerPool struct {
	workerCount int
	jobQueue    chan durationJob
	resultQueue chan durationResult
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

type durationJob struct {
	order int
	years int
}

type durationResult struct {
	order int
	row   ReportRow
}

// NewWorkerPool creates a pool with the given number of workers; zero
// or negative means one worker per CPU.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workerCount: workerCount,
		jobQueue:    make(chan durationJob, workerCount),
		resultQueue: make(chan durationResult, workerCount),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// RunParallel evaluates every duration concurrently and returns report
// rows in the configured order. The rows are identical to what Run
// produces: the aggregation reduction is associative, so distributing
// durations across workers cannot change the result.
func (e *Engine) RunParallel(series *types.PriceSeries, workerCount int) []ReportRow {
	pool := NewWorkerPool(workerCount)
	defer pool.cancel()

	for i := 0; i < pool.workerCount; i++ {
		pool.wg.Add(1)
		go pool.worker(e, series)
	}

	go func() {
		defer close(pool.jobQueue)
		for i, years := range e.durations {
			select {
			case pool.jobQueue <- durationJob{order: i, years: years}:
			case <-pool.ctx.Done():
				return
			}
		}
	}()

	go func() {
		pool.wg.Wait()
		close(pool.resultQueue)
	}()

	rows := make([]ReportRow, len(e.durations))
	for result := range pool.resultQueue {
		rows[result.order] = result.row
	}

	return rows
}

func (p *WorkerPool) worker(e *Engine, series *types.PriceSeries) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.resultQueue <- durationResult{
				order: job.order,
				row:   e.runDuration(series, job.years),
			}
		case <-p.ctx.Done():
			return
		}
	}
}
