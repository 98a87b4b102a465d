package data

import "github.com/aclements/chartcore"

// BackoffStrategy selects how PollingDataSource reschedules after an
// error.
type BackoffStrategy int

const (
	BackoffFixed BackoffStrategy = iota
	BackoffExponential
)

// PollingState is the PollingDataSource's lifecycle state.
type PollingState int

const (
	PollingIdle PollingState = iota
	PollingFetching
	PollingError
)

// PollingDataSource is the time-triggered counterpart to
// StreamingDataSource.
type PollingDataSource struct {
	Strategy       BackoffStrategy
	BaseIntervalMs int64
	MaxIntervalMs  int64
	BackoffFactor  float64
	MaxRetries     int

	state             PollingState
	lastPollTimeMs    int64
	nextPollTimeMs    int64
	currentIntervalMs int64
	errorCount        int
}

// NewPollingDataSource returns a source polling every baseIntervalMs,
// backing off on errors up to maxIntervalMs, giving up after
// maxRetries consecutive failures.
func NewPollingDataSource(baseIntervalMs, maxIntervalMs int64, factor float64, maxRetries int) *PollingDataSource {
	return &PollingDataSource{
		Strategy:          BackoffExponential,
		BaseIntervalMs:    baseIntervalMs,
		MaxIntervalMs:     maxIntervalMs,
		BackoffFactor:     factor,
		MaxRetries:        maxRetries,
		currentIntervalMs: baseIntervalMs,
	}
}

// ShouldFetch reports whether nowMs has reached the next scheduled
// poll and the source isn't already mid-fetch.
func (p *PollingDataSource) ShouldFetch(nowMs int64) bool {
	return p.state != PollingFetching && nowMs >= p.nextPollTimeMs
}

// BeginFetch transitions to the Fetching state.
func (p *PollingDataSource) BeginFetch(nowMs int64) {
	p.state = PollingFetching
	p.lastPollTimeMs = nowMs
}

// Succeed resets the error count and reschedules at the base
// interval.
func (p *PollingDataSource) Succeed(nowMs int64) {
	p.errorCount = 0
	p.currentIntervalMs = p.BaseIntervalMs
	p.state = PollingIdle
	p.nextPollTimeMs = nowMs + p.currentIntervalMs
}

// Fail increments the error count, applies the backoff strategy, and
// transitions to PollingError once the error count reaches MaxRetries.
func (p *PollingDataSource) Fail(nowMs int64) {
	p.errorCount++
	if p.Strategy == BackoffExponential {
		next := float64(p.currentIntervalMs) * p.BackoffFactor
		if p.MaxIntervalMs > 0 && next > float64(p.MaxIntervalMs) {
			next = float64(p.MaxIntervalMs)
		}
		p.currentIntervalMs = int64(next)
	}
	if p.MaxRetries > 0 && p.errorCount >= p.MaxRetries {
		p.state = PollingError
		chartcore.Warn.Printf("polling source giving up after %d consecutive failures", p.errorCount)
	} else {
		p.state = PollingIdle
		chartcore.Warn.Printf("polling source backing off to %dms after failure %d", p.currentIntervalMs, p.errorCount)
	}
	p.nextPollTimeMs = nowMs + p.currentIntervalMs
}

// State returns the current lifecycle state.
func (p *PollingDataSource) State() PollingState { return p.state }

// ErrorCount returns the number of consecutive failures since the
// last success.
func (p *PollingDataSource) ErrorCount() int { return p.errorCount }
