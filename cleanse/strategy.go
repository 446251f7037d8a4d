package cleanse

import (
	"context"
	"fmt"

	apperrors "github.com/kbukum/scorepipe/errors"
	"github.com/kbukum/scorepipe/pipeline"
	"github.com/kbukum/scorepipe/record"
)

// Strategy names one of the three pipeline implementations.
type Strategy string

const (
	StrategyEager     Strategy = "eager"
	StrategyOptimized Strategy = "optimized"
	StrategyStream    Strategy = "stream"
)

// Strategies lists every valid strategy name.
func Strategies() []Strategy {
	return []Strategy{StrategyEager, StrategyOptimized, StrategyStream}
}

// ParseStrategy resolves a strategy name, defaulting to StrategyStream for
// an empty string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyStream, nil
	case StrategyEager, StrategyOptimized, StrategyStream:
		return Strategy(s), nil
	default:
		return "", apperrors.InvalidInput("strategy",
			fmt.Sprintf("unknown strategy %q, valid: %v", s, Strategies()))
	}
}

// Run executes the named strategy over records and materializes the result.
func Run(ctx context.Context, s Strategy, records []record.RawRecord) ([]record.Record, error) {
	switch s {
	case StrategyEager:
		return pipeline.Collect(ctx, Eager(records))
	case StrategyOptimized:
		return Optimized(records), nil
	case StrategyStream:
		return pipeline.Collect(ctx, Stream(records))
	default:
		return nil, apperrors.InvalidInput("strategy", fmt.Sprintf("unknown strategy %q", string(s)))
	}
}
