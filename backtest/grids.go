package backtest

import "github.com/rustyeddy/ticklab/strategies"

// Grid returns the fixed parameter sweep: every strategy family crossed with
// its explicit tuple list. The grid is deliberately literal so a sweep is
// reproducible from the source alone.
func Grid() []Job {
	var jobs []Job

	for _, p := range []int{5, 10, 20, 50} {
		period := p
		jobs = append(jobs, Job{Family: "sma", New: func() strategies.TickStrategy {
			return strategies.NewSMA(period)
		}})
	}

	for _, p := range []int{5, 10, 20, 50} {
		period := p
		jobs = append(jobs, Job{Family: "ema", New: func() strategies.TickStrategy {
			return strategies.NewEMA(period)
		}})
	}

	for _, t := range [][2]int{{5, 20}, {10, 50}, {20, 100}} {
		fast, slow := t[0], t[1]
		jobs = append(jobs, Job{Family: "dualma", New: func() strategies.TickStrategy {
			return strategies.NewDualMA(fast, slow)
		}})
	}

	for _, t := range []struct {
		period    int
		low, high float64
	}{{14, 30, 70}, {7, 20, 80}, {21, 30, 70}} {
		tt := t
		jobs = append(jobs, Job{Family: "rsi", New: func() strategies.TickStrategy {
			return strategies.NewRSI(tt.period, tt.low, tt.high)
		}})
	}

	for _, t := range [][3]int{{12, 26, 9}, {5, 35, 5}} {
		fast, slow, signal := t[0], t[1], t[2]
		jobs = append(jobs, Job{Family: "macd", New: func() strategies.TickStrategy {
			return strategies.NewMACD(fast, slow, signal)
		}})
	}

	for _, t := range []struct {
		period, smoothK, smoothD int
		low, high                float64
	}{{14, 3, 3, 20, 80}, {21, 5, 5, 20, 80}} {
		tt := t
		jobs = append(jobs, Job{Family: "stochastic", New: func() strategies.TickStrategy {
			return strategies.NewStochastic(tt.period, tt.smoothK, tt.smoothD, tt.low, tt.high)
		}})
	}

	for _, t := range []struct {
		period int
		k      float64
	}{{20, 2}, {20, 2.5}, {10, 2}} {
		tt := t
		jobs = append(jobs, Job{Family: "bollinger", New: func() strategies.TickStrategy {
			return strategies.NewBollinger(tt.period, tt.k)
		}})
	}

	for _, t := range []struct {
		period int
		mult   float64
	}{{14, 1.5}, {14, 2}, {7, 1.5}} {
		tt := t
		jobs = append(jobs, Job{Family: "atr", New: func() strategies.TickStrategy {
			return strategies.NewATRBreakout(tt.period, tt.mult)
		}})
	}

	for _, t := range []struct {
		period    int
		threshold float64
	}{{20, 2}, {20, 1.5}, {10, 2}} {
		tt := t
		jobs = append(jobs, Job{Family: "zscore", New: func() strategies.TickStrategy {
			return strategies.NewZScore(tt.period, tt.threshold)
		}})
	}

	jobs = append(jobs, Job{Family: "vwap", New: func() strategies.TickStrategy {
		return strategies.NewVWAP()
	}})

	return jobs
}

// FilterFamilies keeps only the jobs whose family appears in names. An empty
// names list keeps everything.
func FilterFamilies(jobs []Job, names []string) []Job {
	if len(names) == 0 {
		return jobs
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out []Job
	for _, j := range jobs {
		if keep[j.Family] {
			out = append(out, j)
		}
	}
	return out
}
