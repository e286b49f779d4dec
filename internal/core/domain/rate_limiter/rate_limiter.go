package ratelimiter

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

func (i Interval) Duration() time.Duration {
	if i == Hour {
		return time.Hour
	}
	return time.Minute
}

// WindowEnd is the moment the fixed window containing now is over.
func (i Interval) WindowEnd(now time.Time) time.Time {
	return now.Truncate(i.Duration()).Add(i.Duration())
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed  bool
	RetryAfter time.Duration
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed(retryAfter time.Duration) Result {
	return Result{IsAllowed: false, RetryAfter: retryAfter}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
