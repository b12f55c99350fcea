package usecase

import (
	"testing"
	"time"

	"rearranger/config"
)

func TestPacer(t *testing.T) {
	tests := []struct {
		name      string
		out       config.OutputConfig
		wantSleep time.Duration
	}{
		{"disabled", config.OutputConfig{Slow: false, DelayMS: 50}, 0},
		{"slow without delay", config.OutputConfig{Slow: true}, 0},
		{"slow", config.OutputConfig{Slow: true, DelayMS: 50}, 50 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var slept []time.Duration
			p := NewPacer(tt.out)
			p.sleep = func(d time.Duration) { slept = append(slept, d) }

			p.Wait()
			p.Wait()

			if tt.wantSleep == 0 {
				if len(slept) != 0 || p.Enabled() {
					t.Errorf("expected no sleeps, got %v", slept)
				}
				return
			}
			if len(slept) != 2 || slept[0] != tt.wantSleep {
				t.Errorf("expected two sleeps of %v, got %v", tt.wantSleep, slept)
			}
		})
	}
}

func TestPacer_Nil(t *testing.T) {
	var p *Pacer
	p.Wait()
	if p.Enabled() {
		t.Error("nil pacer should be disabled")
	}
}
