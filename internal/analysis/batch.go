package analysis

import (
	"context"
	"errors"
)

// ErrNilEngine is returned by RunBatch when it is called without an engine.
var ErrNilEngine = errors.New("analysis: nil engine")

// RunBatch analyzes messages sequentially, stopping early if ctx is cancelled.
// Blank messages are skipped. The returned slice holds the results completed so far.
func RunBatch(ctx context.Context, engine *Engine, messages []string) ([]Result, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if len(messages) == 0 {
		return nil, nil
	}

	var results []Result
	for _, message := range messages {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		if RequireText(message) != nil {
			continue
		}
		results = append(results, engine.Analyze(message))
	}

	return results, nil
}
