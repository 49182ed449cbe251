package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts  = 3
	defaultBaseDelay = 2 * time.Second
)

type RetryConfig struct {
	Attempts  uint          `env:"ATTEMPTS" envDefault:"3"`
	BaseDelay time.Duration `env:"BASE_DELAY" envDefault:"2s"`
}

// ToRetryOptions builds retry-go options with a linear delay ladder: the
// wait before retry n (1-based) is n*BaseDelay, so three attempts sleep
// 1*base then 2*base between them.
func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	base := rc.BaseDelay
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return Delay(n, base)
		}),
		retry.LastErrorOnly(true),
	}
}

// Delay is the wait after the n-th failed attempt (0-based).
func Delay(n uint, base time.Duration) time.Duration {
	return time.Duration(n+1) * base
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Attempts:  defaultAttempts,
		BaseDelay: defaultBaseDelay,
	}
}
