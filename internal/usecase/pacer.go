package usecase

import (
	"time"

	"rearranger/config"
)

// Pacer inserts the configured delay before each output write.
type Pacer struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewPacer creates a Pacer. It never sleeps unless slow output is enabled.
func NewPacer(out config.OutputConfig) *Pacer {
	p := &Pacer{sleep: time.Sleep}
	if out.Slow {
		p.delay = time.Duration(out.DelayMS) * time.Millisecond
	}
	return p
}

// Wait blocks for the configured delay.
func (p *Pacer) Wait() {
	if p == nil || p.delay <= 0 {
		return
	}
	p.sleep(p.delay)
}

// Enabled reports whether writes are delayed.
func (p *Pacer) Enabled() bool {
	return p != nil && p.delay > 0
}
