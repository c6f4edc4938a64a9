package solver

import "log/slog"

type option func(solver) solver

// WithWorkers evaluates the root decision with up to n goroutines. Values
// below 2 solve sequentially.
func WithWorkers(n int) option {
	return func(s solver) solver {
		s.workers = n
		return s
	}
}

// WithLogger sets the logger used to report solve progress.
func WithLogger(logger *slog.Logger) option {
	return func(s solver) solver {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

// WithThreshold sets the pot value below which a branch counts as lost.
func WithThreshold(threshold float64) option {
	return func(s solver) solver {
		s.threshold = threshold
		return s
	}
}
