package backtest

import (
	"fmt"
	"sync"

	"github.com/rustyeddy/ticklab/market"
	"github.com/rustyeddy/ticklab/strategies"
)

// Job pairs a strategy family with a constructor for one parameter tuple.
// Each job gets a fresh instance; instances never interact and share only
// the read-only tick series.
type Job struct {
	Family string
	New    func() strategies.TickStrategy
}

// Runner sweeps jobs over a shared tick series. Workers > 1 runs jobs on a
// worker pool; results are identical to the sequential order because each
// job is independent and results are collected by job index before ranking.
type Runner struct {
	Series  *market.Series
	Workers int
}

// Run replays the full series through every job and returns the results
// ranked by total P&L descending.
func (r *Runner) Run(jobs []Job) ([]RunResult, error) {
	if r.Series == nil {
		return nil, fmt.Errorf("backtest: Series is required")
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) && len(jobs) > 0 {
		workers = len(jobs)
	}

	results := make([]RunResult, len(jobs))

	idxCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				results[i] = runOne(r.Series, jobs[i])
			}
		}()
	}
	for i := range jobs {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	SortByTotalPL(results)
	return results, nil
}

func runOne(series *market.Series, job Job) RunResult {
	strat := job.New()

	it := series.Iterator()
	for it.Next() {
		strat.OnTick(it.Tick(), it.Index())
	}
	strat.Finalize()

	ledger := strat.Trades()
	return RunResult{
		Result: Analyze(strat.Name(), ledger),
		Ledger: ledger,
	}
}
