// Package keepalive periodically requests a URL so that the hosting platform does not idle the service.
package keepalive

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultInterval   = 10 * time.Minute
	defaultPingTimout = 10 * time.Second
)

type Pinger struct {
	client   Client
	interval time.Duration
	l        *logrus.Entry
}

func New(url string, interval time.Duration, l *logrus.Logger) *Pinger {
	return NewWithClient(NewHTTPClient(url), interval, l.WithField("url", url))
}

// NewWithClient a non-positive interval falls back to DefaultInterval.
func NewWithClient(client Client, interval time.Duration, l *logrus.Entry) *Pinger {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pinger{
		client:   client,
		interval: interval,
		l:        l.WithField("component", "keepalive"),
	}
}

// Run pings right away and then once per interval until ctx is cancelled. Failures are only logged.
func (p *Pinger) Run(ctx context.Context) {
	p.l.WithField("interval", p.interval.String()).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.ping(ctx)

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

// ping retries while the server answers 429, waiting as long as it asks to.
func (p *Pinger) ping(ctx context.Context) {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultPingTimout)
		status, err := p.client.Ping(reqCtx)
		cancel()

		if err == nil {
			p.l.WithField("status", status).Info("Ping succeeded")
			return
		}

		var tooManyReq *TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			if ctx.Err() == nil {
				p.l.WithError(err).Error("Ping failed")
			}
			return
		}

		p.l.WithField("retryAfter", tooManyReq.RetryAfter.String()).Warn("Ping throttled")
		select {
		case <-ctx.Done():
			return
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
}
