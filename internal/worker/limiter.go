package worker

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles crawl requests per listing-site domain, so a slow
// scan of one source never starves or hammers another.
type Limiter struct {
	mu           sync.RWMutex
	limiters     map[string]*rate.Limiter
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter allowing requestsPerSecond per domain.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the domain of rawURL has request budget.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	return l.limiterFor(parsed.Host).Wait(ctx)
}

// SetDomainRate overrides the rate for one domain. Used when a site's
// robots.txt asks for a specific crawl delay. Setting the same rate
// again is a no-op, so the existing token bucket is never reset
// mid-crawl.
func (l *Limiter) SetDomainRate(domain string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	if existing, ok := l.limiters[domain]; ok {
		if existing.Limit() == rate.Limit(requestsPerSecond) && existing.Burst() == burst {
			return
		}
	}
	l.limiters[domain] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

func (l *Limiter) limiterFor(domain string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[domain]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[domain]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[domain] = limiter

	return limiter
}
