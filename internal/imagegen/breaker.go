package imagegen

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/logger"
)

// Breaker stops calling a failing generator. After three consecutive failures every
// call fails fast with gobreaker.ErrOpenState until the breaker timeout elapses.
type Breaker struct {
	next Generator
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(next Generator) *Breaker {
	return &Breaker{
		next: next,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        constants.BreakerName,
			MaxRequests: constants.BreakerMaxRequests,
			Interval:    constants.BreakerInterval,
			Timeout:     constants.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= constants.BreakerConsecutiveFailures
			},
			// The user closing the editor is not a service failure.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed", "name", name, "from", from, "to", to)
			},
		}),
	}
}

func (b *Breaker) Generate(ctx context.Context, req Request) ([]byte, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	data, _ := out.([]byte)
	return data, nil
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
